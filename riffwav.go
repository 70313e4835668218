package riffwav

func nullTermStr(b []byte) string {
	return string(b[:clen(b)])
}

func clen(b []byte) int {
	for i := range b {
		if b[i] == 0 {
			return i
		}
	}

	return len(b)
}

func evenUp(n int) int {
	if n%2 == 1 {
		return n + 1
	}

	return n
}

func bytesPerSample(bitDepth int) int {
	return (bitDepth-1)/8 + 1
}

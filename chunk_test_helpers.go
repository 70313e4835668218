package riffwav

import "encoding/binary"

// rawChunk builds a [tag + length + body + pad] record for hand-made
// test files.
func rawChunk(tag string, body []byte) []byte {
	id := TagFromString(tag).ID()

	out := make([]byte, 0, chunkHeaderSize+len(body)+1)
	out = append(out, id[:]...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))
	out = append(out, body...)

	if len(out)%2 == 1 {
		out = append(out, 0)
	}

	return out
}

// buildFile wraps chunk records into a RIFF/WAVE file buffer with a
// correct declared length.
func buildFile(chunks ...[]byte) []byte {
	out := []byte("RIFF\x00\x00\x00\x00WAVE")
	for _, c := range chunks {
		out = append(out, c...)
	}

	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-chunkHeaderSize))

	return out
}

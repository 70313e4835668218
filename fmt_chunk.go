package riffwav

import (
	"encoding/binary"
	"fmt"
)

// wavFormatPCM is the linear PCM format tag. Values above it indicate a
// compressed format and carry an extension region in the fmt chunk.
const wavFormatPCM = 1

const (
	fmtChunkBaseSize = 16
	fmtChunkExtSize  = 18
)

// FmtChunk describes the sample format of the audio payload.
// ExtraData is serialized, with its own 2-byte length prefix, if and only
// if FormatTag indicates a compressed format (FormatTag > 1); for PCM the
// body is always the fixed 16 bytes regardless of ExtraData.
type FmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	// ExtraData aliases the source buffer after a decode.
	ExtraData []byte
}

func (c *FmtChunk) Tag() Tag { return TagFmt }

func (c *FmtChunk) Length() int {
	if c.FormatTag <= wavFormatPCM {
		return fmtChunkBaseSize
	}

	return fmtChunkExtSize + len(c.ExtraData)
}

func (c *FmtChunk) Pack(dst []byte) error {
	if len(dst) < c.Length() {
		return fmt.Errorf("%s chunk: %w", TagFmt, errShortPackBuffer)
	}

	binary.LittleEndian.PutUint16(dst[0:2], c.FormatTag)
	binary.LittleEndian.PutUint16(dst[2:4], c.NumChannels)
	binary.LittleEndian.PutUint32(dst[4:8], c.SampleRate)
	binary.LittleEndian.PutUint32(dst[8:12], c.AvgBytesPerSec)
	binary.LittleEndian.PutUint16(dst[12:14], c.BlockAlign)
	binary.LittleEndian.PutUint16(dst[14:16], c.BitsPerSample)

	if c.FormatTag <= wavFormatPCM {
		return nil
	}

	binary.LittleEndian.PutUint16(dst[16:18], uint16(len(c.ExtraData)))
	copy(dst[18:], c.ExtraData)

	return nil
}

// DecodeFmtChunk decodes a fmt chunk body. The extension blob, when
// present, is a zero-copy view into data.
func DecodeFmtChunk(_ Tag, data []byte) (Chunk, error) {
	if len(data) < fmtChunkBaseSize {
		return nil, fmt.Errorf("%s chunk needs %d bytes, have %d: %w",
			TagFmt, fmtChunkBaseSize, len(data), ErrLengthOutOfBounds)
	}

	c := &FmtChunk{
		FormatTag:      binary.LittleEndian.Uint16(data[0:2]),
		NumChannels:    binary.LittleEndian.Uint16(data[2:4]),
		SampleRate:     binary.LittleEndian.Uint32(data[4:8]),
		AvgBytesPerSec: binary.LittleEndian.Uint32(data[8:12]),
		BlockAlign:     binary.LittleEndian.Uint16(data[12:14]),
		BitsPerSample:  binary.LittleEndian.Uint16(data[14:16]),
	}

	if c.FormatTag <= wavFormatPCM {
		return c, nil
	}

	if len(data) < fmtChunkExtSize {
		return nil, fmt.Errorf("%s chunk extension size field: %w", TagFmt, ErrLengthOutOfBounds)
	}

	extraSize := int(binary.LittleEndian.Uint16(data[16:18]))
	if fmtChunkExtSize+extraSize > len(data) {
		return nil, fmt.Errorf("%s chunk extension claims %d bytes, have %d: %w",
			TagFmt, extraSize, len(data)-fmtChunkExtSize, ErrLengthOutOfBounds)
	}

	c.ExtraData = data[fmtChunkExtSize : fmtChunkExtSize+extraSize]

	return c, nil
}

func (c *FmtChunk) Clone() *FmtChunk {
	if c == nil {
		return nil
	}

	out := *c
	out.ExtraData = append([]byte(nil), c.ExtraData...)

	return &out
}

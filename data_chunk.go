package riffwav

import (
	"fmt"
	"unsafe"
)

// DataChunk holds the raw audio payload. The payload is opaque to this
// package; no sample decoding happens here.
// Data aliases the buffer it was decoded from; use Clone to detach it.
type DataChunk struct {
	Data []byte
}

func (c *DataChunk) Tag() Tag { return TagData }

func (c *DataChunk) Length() int { return len(c.Data) }

func (c *DataChunk) Pack(dst []byte) error {
	if len(dst) < len(c.Data) {
		return fmt.Errorf("%s chunk: %w", TagData, errShortPackBuffer)
	}

	copy(dst, c.Data)

	return nil
}

// DecodeDataChunk stores a zero-copy view of the payload.
func DecodeDataChunk(_ Tag, data []byte) (Chunk, error) {
	return &DataChunk{Data: data}, nil
}

// Int8Samples reinterprets the payload as signed 8-bit samples.
// The view shares the chunk's backing memory and is only valid while the
// source buffer is alive.
func (c *DataChunk) Int8Samples() []int8 {
	if len(c.Data) == 0 {
		return nil
	}

	return unsafe.Slice((*int8)(unsafe.Pointer(&c.Data[0])), len(c.Data))
}

// Int16Samples reinterprets the payload as signed little-endian 16-bit
// samples, sharing the chunk's backing memory. A trailing odd byte is not
// part of any sample and is ignored.
func (c *DataChunk) Int16Samples() []int16 {
	n := len(c.Data) / 2
	if n == 0 {
		return nil
	}

	return unsafe.Slice((*int16)(unsafe.Pointer(&c.Data[0])), n)
}

// Int32Samples reinterprets the payload as signed little-endian 32-bit
// samples, sharing the chunk's backing memory.
func (c *DataChunk) Int32Samples() []int32 {
	n := len(c.Data) / 4
	if n == 0 {
		return nil
	}

	return unsafe.Slice((*int32)(unsafe.Pointer(&c.Data[0])), n)
}

// SampleView returns the zero-copy sample view for the requested bit
// depth ([]int8, []int16 or []int32). Any other depth fails with
// ErrUnsupportedBitDepth.
func (c *DataChunk) SampleView(bitDepth int) (any, error) {
	switch bitDepth {
	case 8:
		return c.Int8Samples(), nil
	case 16:
		return c.Int16Samples(), nil
	case 32:
		return c.Int32Samples(), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
}

func (c *DataChunk) Clone() *DataChunk {
	if c == nil {
		return nil
	}

	return &DataChunk{Data: append([]byte(nil), c.Data...)}
}

package riffwav

import (
	"encoding/binary"
	"fmt"
)

const cuePointSize = 24

// CuePoint is a single position marker within the audio data. All six
// fields are serialized as little-endian u32; DataChunkID is an opaque
// tag reference and is never dereferenced.
type CuePoint struct {
	ID           uint32
	Position     uint32
	DataChunkID  uint32
	ChunkStart   uint32
	BlockStart   uint32
	SampleOffset uint32
}

// CueChunk stores the cue points of a file: a u32 count followed by the
// fixed 24-byte records, contiguous, with no padding between records.
type CueChunk struct {
	Points []CuePoint
}

func (c *CueChunk) Tag() Tag { return TagCue }

func (c *CueChunk) Length() int { return 4 + cuePointSize*len(c.Points) }

func (c *CueChunk) Pack(dst []byte) error {
	if len(dst) < c.Length() {
		return fmt.Errorf("%s chunk: %w", TagCue, errShortPackBuffer)
	}

	binary.LittleEndian.PutUint32(dst[0:4], uint32(len(c.Points)))

	off := 4
	for i := range c.Points {
		p := &c.Points[i]
		binary.LittleEndian.PutUint32(dst[off:off+4], p.ID)
		binary.LittleEndian.PutUint32(dst[off+4:off+8], p.Position)
		binary.LittleEndian.PutUint32(dst[off+8:off+12], p.DataChunkID)
		binary.LittleEndian.PutUint32(dst[off+12:off+16], p.ChunkStart)
		binary.LittleEndian.PutUint32(dst[off+16:off+20], p.BlockStart)
		binary.LittleEndian.PutUint32(dst[off+20:off+24], p.SampleOffset)
		off += cuePointSize
	}

	return nil
}

// DecodeCueChunk decodes a cue chunk body. Field values are not
// validated; any u32 passes through unchanged.
func DecodeCueChunk(_ Tag, data []byte) (Chunk, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%s chunk count field: %w", TagCue, ErrLengthOutOfBounds)
	}

	count := int(binary.LittleEndian.Uint32(data[0:4]))
	if 4+count*cuePointSize > len(data) {
		return nil, fmt.Errorf("%s chunk claims %d points, have %d bytes: %w",
			TagCue, count, len(data)-4, ErrLengthOutOfBounds)
	}

	c := &CueChunk{Points: make([]CuePoint, count)}

	off := 4
	for i := range c.Points {
		c.Points[i] = CuePoint{
			ID:           binary.LittleEndian.Uint32(data[off : off+4]),
			Position:     binary.LittleEndian.Uint32(data[off+4 : off+8]),
			DataChunkID:  binary.LittleEndian.Uint32(data[off+8 : off+12]),
			ChunkStart:   binary.LittleEndian.Uint32(data[off+12 : off+16]),
			BlockStart:   binary.LittleEndian.Uint32(data[off+16 : off+20]),
			SampleOffset: binary.LittleEndian.Uint32(data[off+20 : off+24]),
		}
		off += cuePointSize
	}

	return c, nil
}

func (c *CueChunk) Clone() *CueChunk {
	if c == nil {
		return nil
	}

	return &CueChunk{Points: append([]CuePoint(nil), c.Points...)}
}

package riffwav

import "fmt"

// UnknownChunk preserves a chunk with an unrecognized tag so that files
// carrying vendor or future extensions round-trip losslessly.
// Data aliases the buffer it was decoded from; use Clone to detach it.
type UnknownChunk struct {
	ID   Tag
	Data []byte
}

func (c *UnknownChunk) Tag() Tag { return c.ID }

func (c *UnknownChunk) Length() int { return len(c.Data) }

func (c *UnknownChunk) Pack(dst []byte) error {
	if len(dst) < len(c.Data) {
		return fmt.Errorf("%s chunk: %w", c.ID, errShortPackBuffer)
	}

	copy(dst, c.Data)

	return nil
}

// DecodeUnknownChunk stores the tag and a zero-copy view of the body.
func DecodeUnknownChunk(tag Tag, data []byte) (Chunk, error) {
	return &UnknownChunk{ID: tag, Data: data}, nil
}

func (c *UnknownChunk) Clone() *UnknownChunk {
	out := *c
	out.Data = append([]byte(nil), c.Data...)

	return &out
}

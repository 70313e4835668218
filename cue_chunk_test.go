package riffwav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func cueChunkBody(points ...CuePoint) []byte {
	body := binary.LittleEndian.AppendUint32(nil, uint32(len(points)))
	for _, p := range points {
		body = binary.LittleEndian.AppendUint32(body, p.ID)
		body = binary.LittleEndian.AppendUint32(body, p.Position)
		body = binary.LittleEndian.AppendUint32(body, p.DataChunkID)
		body = binary.LittleEndian.AppendUint32(body, p.ChunkStart)
		body = binary.LittleEndian.AppendUint32(body, p.BlockStart)
		body = binary.LittleEndian.AppendUint32(body, p.SampleOffset)
	}

	return body
}

func TestDecodeCueChunk(t *testing.T) {
	points := []CuePoint{
		{ID: 1, Position: 100, DataChunkID: 0x61746164, SampleOffset: 100},
		{ID: 2, Position: 4200, DataChunkID: 0x61746164, ChunkStart: 8, BlockStart: 16, SampleOffset: 4200},
	}

	chunk, err := DecodeCueChunk(TagCue, cueChunkBody(points...))
	if err != nil {
		t.Fatalf("decode cue chunk: %v", err)
	}

	c := chunk.(*CueChunk)

	if len(c.Points) != len(points) {
		t.Fatalf("expected %d cue points, got %d", len(points), len(c.Points))
	}

	for i := range points {
		if c.Points[i] != points[i] {
			t.Fatalf("cue point %d mismatch: got %+v want %+v", i, c.Points[i], points[i])
		}
	}

	if c.Length() != 4+2*cuePointSize {
		t.Fatalf("cue length mismatch: %d", c.Length())
	}
}

func TestCueChunkPackRoundTrip(t *testing.T) {
	c := &CueChunk{Points: []CuePoint{{ID: 7, Position: 9, DataChunkID: 42}}}

	dst := make([]byte, c.Length())
	if err := c.Pack(dst); err != nil {
		t.Fatalf("pack cue chunk: %v", err)
	}

	if !bytes.Equal(dst, cueChunkBody(c.Points...)) {
		t.Fatalf("cue body mismatch: %x", dst)
	}
}

func TestDecodeCueChunkBounds(t *testing.T) {
	_, err := DecodeCueChunk(TagCue, []byte{1, 0})
	if !errors.Is(err, ErrLengthOutOfBounds) {
		t.Fatalf("expected bounds error for short body, got %v", err)
	}

	// count field claiming more records than the body holds
	body := cueChunkBody(CuePoint{ID: 1})
	binary.LittleEndian.PutUint32(body[0:4], 3)

	_, err = DecodeCueChunk(TagCue, body)
	if !errors.Is(err, ErrLengthOutOfBounds) {
		t.Fatalf("expected bounds error for overflowing count, got %v", err)
	}
}

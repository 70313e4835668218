package riffwav

import (
	"bytes"
	"errors"
	"testing"
)

var pcmFmtBody = []byte{
	0x01, 0x00, 0x02, 0x00, 0x44, 0xac, 0x00, 0x00,
	0x10, 0xb1, 0x02, 0x00, 0x04, 0x00, 0x10, 0x00,
}

func TestDecodeFmtChunkPCM(t *testing.T) {
	chunk, err := DecodeFmtChunk(TagFmt, pcmFmtBody)
	if err != nil {
		t.Fatalf("decode fmt chunk: %v", err)
	}

	c, ok := chunk.(*FmtChunk)
	if !ok {
		t.Fatalf("expected *FmtChunk, got %T", chunk)
	}

	if c.FormatTag != 1 || c.NumChannels != 2 || c.SampleRate != 44100 ||
		c.AvgBytesPerSec != 176400 || c.BlockAlign != 4 || c.BitsPerSample != 16 {
		t.Fatalf("fmt fields mismatch: %+v", c)
	}

	if c.ExtraData != nil {
		t.Fatalf("unexpected extension data: %v", c.ExtraData)
	}

	if c.Length() != 16 {
		t.Fatalf("PCM fmt length mismatch: %d", c.Length())
	}

	dst := make([]byte, c.Length())
	if err := c.Pack(dst); err != nil {
		t.Fatalf("pack fmt chunk: %v", err)
	}

	if !bytes.Equal(dst, pcmFmtBody) {
		t.Fatalf("re-encoded fmt body mismatch:\ngot  %x\nwant %x", dst, pcmFmtBody)
	}
}

func TestDecodeFmtChunkExtended(t *testing.T) {
	body := append([]byte(nil), pcmFmtBody...)
	body[0] = 0x02
	body = append(body, 0x02, 0x00, 0xab, 0xcd)

	chunk, err := DecodeFmtChunk(TagFmt, body)
	if err != nil {
		t.Fatalf("decode fmt chunk: %v", err)
	}

	c := chunk.(*FmtChunk)

	if c.FormatTag != 2 || c.NumChannels != 2 || c.SampleRate != 44100 {
		t.Fatalf("fmt fields mismatch: %+v", c)
	}

	if !bytes.Equal(c.ExtraData, []byte{0xab, 0xcd}) {
		t.Fatalf("extension data mismatch: %x", c.ExtraData)
	}

	if c.Length() != 20 {
		t.Fatalf("extended fmt length mismatch: %d", c.Length())
	}

	dst := make([]byte, c.Length())
	if err := c.Pack(dst); err != nil {
		t.Fatalf("pack fmt chunk: %v", err)
	}

	if !bytes.Equal(dst, body) {
		t.Fatalf("re-encoded fmt body mismatch:\ngot  %x\nwant %x", dst, body)
	}
}

func TestFmtChunkPCMNeverSerializesExtension(t *testing.T) {
	c := &FmtChunk{FormatTag: 1, NumChannels: 1, SampleRate: 8000, ExtraData: []byte{1, 2, 3}}

	if c.Length() != 16 {
		t.Fatalf("expected fixed 16-byte body, got %d", c.Length())
	}

	dst := make([]byte, 16)
	if err := c.Pack(dst); err != nil {
		t.Fatalf("pack fmt chunk: %v", err)
	}
}

func TestDecodeFmtChunkBounds(t *testing.T) {
	_, err := DecodeFmtChunk(TagFmt, pcmFmtBody[:10])
	if !errors.Is(err, ErrLengthOutOfBounds) {
		t.Fatalf("expected bounds error for short body, got %v", err)
	}

	// compressed format without room for the extension size field
	short := append([]byte(nil), pcmFmtBody...)
	short[0] = 0x02

	_, err = DecodeFmtChunk(TagFmt, short)
	if !errors.Is(err, ErrLengthOutOfBounds) {
		t.Fatalf("expected bounds error for missing extension size, got %v", err)
	}

	// extension size pointing past the end of the body
	overflow := append(short, 0x10, 0x00, 0xab)

	_, err = DecodeFmtChunk(TagFmt, overflow)
	if !errors.Is(err, ErrLengthOutOfBounds) {
		t.Fatalf("expected bounds error for overflowing extension, got %v", err)
	}
}

package riffwav

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	riffHeaderSize  = 12
	chunkHeaderSize = 8
)

var (
	// ErrInvalidHeader is returned when a buffer does not start with a
	// RIFF header carrying the WAVE form type.
	ErrInvalidHeader = errors.New("invalid RIFF/WAVE header")
	// ErrLengthOutOfBounds is returned when a declared length, at the
	// file level or inside any chunk, exceeds the enclosing data.
	ErrLengthOutOfBounds = errors.New("declared length exceeds available data")
	// ErrUnsupportedBitDepth is returned when reinterpreting samples at a
	// bit depth other than 8, 16 or 32.
	ErrUnsupportedBitDepth = errors.New("unsupported sample bit depth")
)

// Wave holds the ordered chunk sequence of a wave file. Order is
// significant and preserved across a decode/encode round trip.
//
// A Wave assumes single-owner access; concurrent mutation of the chunk
// list requires external synchronization.
type Wave struct {
	Chunks []Chunk
}

// Decode parses an in-memory wave file into its chunk sequence.
// Payload-carrying chunks alias data rather than copying it, so data
// must stay alive as long as the Wave (or the chunks must be cloned).
// Unrecognized chunk tags are not errors; they decode as UnknownChunk
// and round-trip verbatim.
func Decode(data []byte) (*Wave, error) {
	if len(data) < riffHeaderSize {
		return nil, fmt.Errorf("file of %d bytes: %w", len(data), ErrInvalidHeader)
	}

	if Tag(binary.BigEndian.Uint32(data[0:4])) != TagRIFF ||
		Tag(binary.BigEndian.Uint32(data[8:12])) != TagWAVE {
		return nil, ErrInvalidHeader
	}

	declared := binary.LittleEndian.Uint32(data[4:8])

	end := int(declared) + chunkHeaderSize
	if end > len(data) {
		return nil, fmt.Errorf("file claims %d bytes, have %d: %w", end, len(data), ErrLengthOutOfBounds)
	}

	w := &Wave{}

	// all RIFF chunks must be word aligned: a chunk with an odd payload
	// size is followed by a zero pad byte that its size field does not
	// include.
	off := riffHeaderSize
	for off < end {
		if off+chunkHeaderSize > end {
			return nil, fmt.Errorf("chunk header at offset %d: %w", off, ErrLengthOutOfBounds)
		}

		tag := Tag(binary.BigEndian.Uint32(data[off : off+4]))
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		off += chunkHeaderSize

		if off+size > end {
			return nil, fmt.Errorf("%s chunk claims %d bytes, have %d: %w",
				tag, size, end-off, ErrLengthOutOfBounds)
		}

		chunk, err := topLevelChunks.Decode(tag, data[off:off+size])
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s chunk: %w", tag, err)
		}

		w.Chunks = append(w.Chunks, chunk)

		off += size
		if off%2 == 1 {
			off++
		}
	}

	return w, nil
}

// Encode serializes the wave into a single exactly-sized buffer:
// the 12-byte RIFF/WAVE header followed by each chunk's 8-byte header,
// its packed body and a zero pad byte whenever the body length is odd.
func (w *Wave) Encode() ([]byte, error) {
	total := riffHeaderSize
	for _, chunk := range w.Chunks {
		total += chunkHeaderSize + evenUp(chunk.Length())
	}

	buf := make([]byte, total)

	riffID := TagRIFF.ID()
	waveID := TagWAVE.ID()
	copy(buf[0:4], riffID[:])
	binary.LittleEndian.PutUint32(buf[4:8], uint32(total-chunkHeaderSize))
	copy(buf[8:12], waveID[:])

	off := riffHeaderSize

	for _, chunk := range w.Chunks {
		chunkLen := chunk.Length()
		id := chunk.Tag().ID()

		copy(buf[off:off+4], id[:])
		binary.LittleEndian.PutUint32(buf[off+4:off+8], uint32(chunkLen))
		off += chunkHeaderSize

		err := chunk.Pack(buf[off : off+chunkLen])
		if err != nil {
			return nil, fmt.Errorf("failed to pack %s chunk: %w", chunk.Tag(), err)
		}

		off += chunkLen
		if off%2 == 1 {
			off++
		}
	}

	return buf, nil
}

package riffwav

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-audio/audio"
)

// ErrChunkNotFound is returned by accessors that need a chunk the wave
// does not carry.
var ErrChunkNotFound = errors.New("chunk not found")

// GetChunk returns the first chunk carrying the given tag, or nil.
func (w *Wave) GetChunk(tag Tag) Chunk {
	if w == nil {
		return nil
	}

	for _, chunk := range w.Chunks {
		if chunk.Tag() == tag {
			return chunk
		}
	}

	return nil
}

// AddChunk appends a chunk to the wave. Chunks are never created or
// removed implicitly; this and RemoveChunk are the only mutators.
func (w *Wave) AddChunk(chunk Chunk) {
	if w == nil || chunk == nil {
		return
	}

	w.Chunks = append(w.Chunks, chunk)
}

// RemoveChunk removes the first chunk carrying the given tag and
// reports whether one was found.
func (w *Wave) RemoveChunk(tag Tag) bool {
	if w == nil {
		return false
	}

	for i, chunk := range w.Chunks {
		if chunk.Tag() == tag {
			w.Chunks = append(w.Chunks[:i], w.Chunks[i+1:]...)
			return true
		}
	}

	return false
}

// FormatChunk returns the wave's fmt chunk, if present. The lookup is
// computed on demand, so it can never go stale after mutation.
func (w *Wave) FormatChunk() *FmtChunk {
	if c, ok := w.GetChunk(TagFmt).(*FmtChunk); ok {
		return c
	}

	return nil
}

// Data returns the wave's data chunk, if present.
func (w *Wave) Data() *DataChunk {
	if c, ok := w.GetChunk(TagData).(*DataChunk); ok {
		return c
	}

	return nil
}

// SampleCount returns the number of sample frames in the data chunk, or
// zero when the fmt or data chunk is missing.
func (w *Wave) SampleCount() int {
	c := w.FormatChunk()
	d := w.Data()

	if c == nil || d == nil || c.NumChannels == 0 || c.BitsPerSample == 0 {
		return 0
	}

	frameSize := bytesPerSample(int(c.BitsPerSample)) * int(c.NumChannels)

	return len(d.Data) / frameSize
}

// Duration returns the play time of the audio payload.
func (w *Wave) Duration() (time.Duration, error) {
	c := w.FormatChunk()
	if c == nil || c.SampleRate == 0 {
		return 0, fmt.Errorf("%s: %w", TagFmt, ErrChunkNotFound)
	}

	if w.Data() == nil {
		return 0, fmt.Errorf("%s: %w", TagData, ErrChunkNotFound)
	}

	return time.Duration(float64(w.SampleCount()) / float64(c.SampleRate) * float64(time.Second)), nil
}

// Format returns the audio format of the payload, or nil without a fmt
// chunk.
func (w *Wave) Format() *audio.Format {
	c := w.FormatChunk()
	if c == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(c.NumChannels),
		SampleRate:  int(c.SampleRate),
	}
}

// IntBuffer copies the payload samples into an audio.IntBuffer. Unlike
// the DataChunk views, the returned buffer owns its memory and may
// outlive the decoded file.
// Note that 8-bit samples are unsigned, all other depths are signed.
func (w *Wave) IntBuffer() (*audio.IntBuffer, error) {
	c := w.FormatChunk()
	if c == nil {
		return nil, fmt.Errorf("%s: %w", TagFmt, ErrChunkNotFound)
	}

	d := w.Data()
	if d == nil {
		return nil, fmt.Errorf("%s: %w", TagData, ErrChunkNotFound)
	}

	buf := &audio.IntBuffer{
		Format:         w.Format(),
		SourceBitDepth: int(c.BitsPerSample),
	}

	switch c.BitsPerSample {
	case 8:
		buf.Data = make([]int, len(d.Data))
		for i, v := range d.Data {
			buf.Data[i] = int(v)
		}
	case 16:
		src := d.Int16Samples()
		buf.Data = make([]int, len(src))
		for i, v := range src {
			buf.Data[i] = int(v)
		}
	case 32:
		src := d.Int32Samples()
		buf.Data = make([]int, len(src))
		for i, v := range src {
			buf.Data[i] = int(v)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, c.BitsPerSample)
	}

	return buf, nil
}

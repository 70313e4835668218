package riffwav

import (
	"encoding/binary"
	"fmt"
)

// smpl chunk is documented here:
// https://sites.google.com/site/musicgapi/technical-documents/wav-file-format#smpl

const (
	smplHeaderSize = 36
	sampleLoopSize = 24
)

// Sample loop playback types. Decode does not validate the field; any
// u32 value passes through unchanged.
const (
	LoopForward        = 0
	LoopForwardReverse = 1
	LoopReverse        = 2
)

// SampleLoop is a defined repeat region for sample playback, serialized
// as six little-endian u32 fields.
type SampleLoop struct {
	CuePointID uint32
	Type       uint32
	Start      uint32
	End        uint32
	Fraction   uint32
	PlayCount  uint32
}

// SmplChunk stores sampler information: a fixed 36-byte header followed
// by the loop records and then the raw sampler data blob.
// SamplerData aliases the source buffer after a decode.
type SmplChunk struct {
	Manufacturer      uint32
	Product           uint32
	SamplePeriod      uint32
	MIDIUnityNote     uint32
	MIDIPitchFraction uint32
	SMPTEFormat       uint32
	SMPTEOffset       uint32
	Loops             []SampleLoop
	SamplerData       []byte
}

func (c *SmplChunk) Tag() Tag { return TagSmpl }

func (c *SmplChunk) Length() int {
	return smplHeaderSize + sampleLoopSize*len(c.Loops) + len(c.SamplerData)
}

func (c *SmplChunk) Pack(dst []byte) error {
	if len(dst) < c.Length() {
		return fmt.Errorf("%s chunk: %w", TagSmpl, errShortPackBuffer)
	}

	binary.LittleEndian.PutUint32(dst[0:4], c.Manufacturer)
	binary.LittleEndian.PutUint32(dst[4:8], c.Product)
	binary.LittleEndian.PutUint32(dst[8:12], c.SamplePeriod)
	binary.LittleEndian.PutUint32(dst[12:16], c.MIDIUnityNote)
	binary.LittleEndian.PutUint32(dst[16:20], c.MIDIPitchFraction)
	binary.LittleEndian.PutUint32(dst[20:24], c.SMPTEFormat)
	binary.LittleEndian.PutUint32(dst[24:28], c.SMPTEOffset)
	binary.LittleEndian.PutUint32(dst[28:32], uint32(len(c.Loops)))
	binary.LittleEndian.PutUint32(dst[32:36], uint32(len(c.SamplerData)))

	off := smplHeaderSize
	for i := range c.Loops {
		l := &c.Loops[i]
		binary.LittleEndian.PutUint32(dst[off:off+4], l.CuePointID)
		binary.LittleEndian.PutUint32(dst[off+4:off+8], l.Type)
		binary.LittleEndian.PutUint32(dst[off+8:off+12], l.Start)
		binary.LittleEndian.PutUint32(dst[off+12:off+16], l.End)
		binary.LittleEndian.PutUint32(dst[off+16:off+20], l.Fraction)
		binary.LittleEndian.PutUint32(dst[off+20:off+24], l.PlayCount)
		off += sampleLoopSize
	}

	copy(dst[off:], c.SamplerData)

	return nil
}

// DecodeSmplChunk decodes a smpl chunk body. The loop array always
// precedes the sampler data blob; both sizes come from the header.
func DecodeSmplChunk(_ Tag, data []byte) (Chunk, error) {
	if len(data) < smplHeaderSize {
		return nil, fmt.Errorf("%s chunk needs %d bytes, have %d: %w",
			TagSmpl, smplHeaderSize, len(data), ErrLengthOutOfBounds)
	}

	c := &SmplChunk{
		Manufacturer:      binary.LittleEndian.Uint32(data[0:4]),
		Product:           binary.LittleEndian.Uint32(data[4:8]),
		SamplePeriod:      binary.LittleEndian.Uint32(data[8:12]),
		MIDIUnityNote:     binary.LittleEndian.Uint32(data[12:16]),
		MIDIPitchFraction: binary.LittleEndian.Uint32(data[16:20]),
		SMPTEFormat:       binary.LittleEndian.Uint32(data[20:24]),
		SMPTEOffset:       binary.LittleEndian.Uint32(data[24:28]),
	}

	loopCount := int(binary.LittleEndian.Uint32(data[28:32]))
	samplerDataLen := int(binary.LittleEndian.Uint32(data[32:36]))

	loopsEnd := smplHeaderSize + loopCount*sampleLoopSize
	if loopsEnd > len(data) {
		return nil, fmt.Errorf("%s chunk claims %d loops, have %d bytes: %w",
			TagSmpl, loopCount, len(data)-smplHeaderSize, ErrLengthOutOfBounds)
	}

	if loopsEnd+samplerDataLen > len(data) {
		return nil, fmt.Errorf("%s chunk claims %d sampler data bytes, have %d: %w",
			TagSmpl, samplerDataLen, len(data)-loopsEnd, ErrLengthOutOfBounds)
	}

	c.Loops = make([]SampleLoop, loopCount)

	off := smplHeaderSize
	for i := range c.Loops {
		c.Loops[i] = SampleLoop{
			CuePointID: binary.LittleEndian.Uint32(data[off : off+4]),
			Type:       binary.LittleEndian.Uint32(data[off+4 : off+8]),
			Start:      binary.LittleEndian.Uint32(data[off+8 : off+12]),
			End:        binary.LittleEndian.Uint32(data[off+12 : off+16]),
			Fraction:   binary.LittleEndian.Uint32(data[off+16 : off+20]),
			PlayCount:  binary.LittleEndian.Uint32(data[off+20 : off+24]),
		}
		off += sampleLoopSize
	}

	if samplerDataLen > 0 {
		c.SamplerData = data[off : off+samplerDataLen]
	}

	return c, nil
}

func (c *SmplChunk) Clone() *SmplChunk {
	if c == nil {
		return nil
	}

	out := *c
	out.Loops = append([]SampleLoop(nil), c.Loops...)
	out.SamplerData = append([]byte(nil), c.SamplerData...)

	return &out
}

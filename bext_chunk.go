package riffwav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

const (
	bextDescriptionLen         = 256
	bextOriginatorLen          = 32
	bextOriginatorReferenceLen = 32
	bextOriginationDateLen     = 10
	bextOriginationTimeLen     = 8
	bextUMIDLen                = 64
	bextReservedLen            = 190

	bextFixedSize = 602
)

// BextChunk stores the EBU broadcast extension metadata. The fixed
// 602-byte region is followed by the free-form coding history text.
type BextChunk struct {
	Description         string
	Originator          string
	OriginatorReference string
	OriginationDate     string
	OriginationTime     string
	TimeReference       uint64
	Version             uint16
	UMID                [bextUMIDLen]byte
	// Reserved aliases the source buffer after a decode.
	Reserved      []byte
	CodingHistory string
}

func (c *BextChunk) Tag() Tag { return TagBext }

func (c *BextChunk) Length() int { return bextFixedSize + len(c.CodingHistory) }

func (c *BextChunk) Pack(dst []byte) error {
	if len(dst) < c.Length() {
		return fmt.Errorf("%s chunk: %w", TagBext, errShortPackBuffer)
	}

	putFixedString(dst[0:256], c.Description)
	putFixedString(dst[256:288], c.Originator)
	putFixedString(dst[288:320], c.OriginatorReference)
	putFixedString(dst[320:330], c.OriginationDate)
	putFixedString(dst[330:338], c.OriginationTime)

	// the 64-bit time reference is stored as two u32 words, low first
	binary.LittleEndian.PutUint32(dst[338:342], uint32(c.TimeReference&0xffffffff))
	binary.LittleEndian.PutUint32(dst[342:346], uint32(c.TimeReference>>32))
	binary.LittleEndian.PutUint16(dst[346:348], c.Version)

	copy(dst[348:412], c.UMID[:])
	putFixedString(dst[412:602], string(c.Reserved))
	copy(dst[602:], c.CodingHistory)

	return nil
}

// DecodeBextChunk decodes a bext chunk body.
func DecodeBextChunk(_ Tag, data []byte) (Chunk, error) {
	if len(data) < bextFixedSize {
		return nil, fmt.Errorf("%s chunk needs %d bytes, have %d: %w",
			TagBext, bextFixedSize, len(data), ErrLengthOutOfBounds)
	}

	c := &BextChunk{
		Description:         readFixedString(data[0:256]),
		Originator:          readFixedString(data[256:288]),
		OriginatorReference: readFixedString(data[288:320]),
		OriginationDate:     readFixedString(data[320:330]),
		OriginationTime:     readFixedString(data[330:338]),
		Version:             binary.LittleEndian.Uint16(data[346:348]),
		Reserved:            data[412:602],
	}

	timeRefLow := binary.LittleEndian.Uint32(data[338:342])
	timeRefHigh := binary.LittleEndian.Uint32(data[342:346])
	c.TimeReference = uint64(timeRefHigh)<<32 | uint64(timeRefLow)

	copy(c.UMID[:], data[348:412])

	if len(data) > bextFixedSize {
		c.CodingHistory = string(bytes.TrimRight(data[bextFixedSize:], "\x00"))
	}

	return c, nil
}

func (c *BextChunk) Clone() *BextChunk {
	if c == nil {
		return nil
	}

	out := *c
	out.Reserved = append([]byte(nil), c.Reserved...)

	return &out
}

func putFixedString(dst []byte, s string) {
	for i := range dst {
		dst[i] = 0
	}

	copy(dst, s)
}

func readFixedString(b []byte) string {
	return strings.TrimRight(nullTermStr(b), " ")
}

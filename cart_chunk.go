package riffwav

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	cartVersionLen            = 4
	cartTitleLen              = 64
	cartArtistLen             = 64
	cartCutIDLen              = 64
	cartClientIDLen           = 64
	cartCategoryLen           = 64
	cartClassificationLen     = 64
	cartOutCueLen             = 64
	cartStartDateLen          = 10
	cartStartTimeLen          = 8
	cartEndDateLen            = 10
	cartEndTimeLen            = 8
	cartProducerAppIDLen      = 64
	cartProducerAppVersionLen = 64
	cartUserDefLen            = 64
	cartPostTimerCount        = 8
	cartReservedLen           = 276

	cartFixedSize = 1024
)

// CartTimer is a single post timer entry of a cart chunk.
type CartTimer struct {
	Usage uint32
	Value uint32
}

// CartChunk stores AES cart metadata. The fixed 1024-byte region may be
// followed by a null-terminated URL and null-terminated tag text.
type CartChunk struct {
	Version            string
	Title              string
	Artist             string
	CutID              string
	ClientID           string
	Category           string
	Classification     string
	OutCue             string
	StartDate          string
	StartTime          string
	EndDate            string
	EndTime            string
	ProducerAppID      string
	ProducerAppVersion string
	UserDef            string
	LevelReference     int32
	PostTimer          [cartPostTimerCount]CartTimer
	// Reserved aliases the source buffer after a decode.
	Reserved []byte
	URL      string
	TagText  string
}

func (c *CartChunk) Tag() Tag { return TagCart }

func (c *CartChunk) Length() int {
	n := cartFixedSize
	if c.URL != "" || c.TagText != "" {
		n += len(c.URL) + 1
		if c.TagText != "" {
			n += len(c.TagText) + 1
		}
	}

	return n
}

func (c *CartChunk) Pack(dst []byte) error {
	if len(dst) < c.Length() {
		return fmt.Errorf("%s chunk: %w", TagCart, errShortPackBuffer)
	}

	putFixedString(dst[0:4], c.Version)
	putFixedString(dst[4:68], c.Title)
	putFixedString(dst[68:132], c.Artist)
	putFixedString(dst[132:196], c.CutID)
	putFixedString(dst[196:260], c.ClientID)
	putFixedString(dst[260:324], c.Category)
	putFixedString(dst[324:388], c.Classification)
	putFixedString(dst[388:452], c.OutCue)
	putFixedString(dst[452:462], c.StartDate)
	putFixedString(dst[462:470], c.StartTime)
	putFixedString(dst[470:480], c.EndDate)
	putFixedString(dst[480:488], c.EndTime)
	putFixedString(dst[488:552], c.ProducerAppID)
	putFixedString(dst[552:616], c.ProducerAppVersion)
	putFixedString(dst[616:680], c.UserDef)

	binary.LittleEndian.PutUint32(dst[680:684], uint32(c.LevelReference))

	off := 684
	for i := range c.PostTimer {
		binary.LittleEndian.PutUint32(dst[off:off+4], c.PostTimer[i].Usage)
		binary.LittleEndian.PutUint32(dst[off+4:off+8], c.PostTimer[i].Value)
		off += 8
	}

	putFixedString(dst[748:1024], string(c.Reserved))

	if c.URL != "" || c.TagText != "" {
		off = cartFixedSize
		copy(dst[off:], c.URL)
		off += len(c.URL)
		dst[off] = 0
		off++

		if c.TagText != "" {
			copy(dst[off:], c.TagText)
			dst[off+len(c.TagText)] = 0
		}
	}

	return nil
}

// DecodeCartChunk decodes a cart chunk body.
func DecodeCartChunk(_ Tag, data []byte) (Chunk, error) {
	if len(data) < cartFixedSize {
		return nil, fmt.Errorf("%s chunk needs %d bytes, have %d: %w",
			TagCart, cartFixedSize, len(data), ErrLengthOutOfBounds)
	}

	c := &CartChunk{
		Version:            readFixedString(data[0:4]),
		Title:              readFixedString(data[4:68]),
		Artist:             readFixedString(data[68:132]),
		CutID:              readFixedString(data[132:196]),
		ClientID:           readFixedString(data[196:260]),
		Category:           readFixedString(data[260:324]),
		Classification:     readFixedString(data[324:388]),
		OutCue:             readFixedString(data[388:452]),
		StartDate:          readFixedString(data[452:462]),
		StartTime:          readFixedString(data[462:470]),
		EndDate:            readFixedString(data[470:480]),
		EndTime:            readFixedString(data[480:488]),
		ProducerAppID:      readFixedString(data[488:552]),
		ProducerAppVersion: readFixedString(data[552:616]),
		UserDef:            readFixedString(data[616:680]),
		LevelReference:     int32(binary.LittleEndian.Uint32(data[680:684])),
		Reserved:           data[748:1024],
	}

	off := 684
	for i := range c.PostTimer {
		c.PostTimer[i] = CartTimer{
			Usage: binary.LittleEndian.Uint32(data[off : off+4]),
			Value: binary.LittleEndian.Uint32(data[off+4 : off+8]),
		}
		off += 8
	}

	if len(data) > cartFixedSize {
		extra := data[cartFixedSize:]
		if idx := bytes.IndexByte(extra, 0); idx >= 0 {
			c.URL = string(extra[:idx])
			c.TagText = string(bytes.TrimRight(extra[idx+1:], "\x00"))
		} else {
			c.URL = string(extra)
		}
	}

	return c, nil
}

func (c *CartChunk) Clone() *CartChunk {
	if c == nil {
		return nil
	}

	out := *c
	out.Reserved = append([]byte(nil), c.Reserved...)

	return &out
}

package riffwav

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var errNilListBody = errors.New("LIST chunk has no body")

// ListChunk wraps exactly one body sub-chunk. It encodes only the body's
// tag followed immediately by the body's bytes; the body spans the
// remainder of the declared chunk size, so no separate length is stored.
type ListChunk struct {
	Body Chunk
}

func (c *ListChunk) Tag() Tag { return TagList }

func (c *ListChunk) Length() int {
	if c.Body == nil {
		return 4
	}

	return 4 + c.Body.Length()
}

func (c *ListChunk) Pack(dst []byte) error {
	if c.Body == nil {
		return errNilListBody
	}

	if len(dst) < c.Length() {
		return fmt.Errorf("%s chunk: %w", TagList, errShortPackBuffer)
	}

	id := c.Body.Tag().ID()
	copy(dst[0:4], id[:])

	return c.Body.Pack(dst[4 : 4+c.Body.Length()])
}

// DecodeListChunk reads the body type tag and decodes the remainder via
// the LIST body registry, falling back to UnknownChunk.
func DecodeListChunk(_ Tag, data []byte) (Chunk, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%s chunk body type: %w", TagList, ErrLengthOutOfBounds)
	}

	bodyTag := Tag(binary.BigEndian.Uint32(data[0:4]))

	body, err := listBodyChunks.Decode(bodyTag, data[4:])
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s body %s: %w", TagList, bodyTag, err)
	}

	return &ListChunk{Body: body}, nil
}

// ADTLChunk is an ordered sequence of standard [tag + length + payload]
// records packed back to back, filling the parent's declared span
// exactly. A single zero pad byte follows any item whose payload leaves
// the cursor on an odd offset; pack and unpack share this rule with the
// top-level container walk.
type ADTLChunk struct {
	Items []Chunk
}

func (c *ADTLChunk) Tag() Tag { return TagAdtl }

func (c *ADTLChunk) Length() int {
	n := 0
	for _, item := range c.Items {
		n += chunkHeaderSize + item.Length()
		if n%2 == 1 {
			n++
		}
	}

	return n
}

func (c *ADTLChunk) Pack(dst []byte) error {
	if len(dst) < c.Length() {
		return fmt.Errorf("%s chunk: %w", TagAdtl, errShortPackBuffer)
	}

	off := 0

	for _, item := range c.Items {
		itemLen := item.Length()
		id := item.Tag().ID()

		copy(dst[off:off+4], id[:])
		binary.LittleEndian.PutUint32(dst[off+4:off+8], uint32(itemLen))

		err := item.Pack(dst[off+chunkHeaderSize : off+chunkHeaderSize+itemLen])
		if err != nil {
			return err
		}

		off += chunkHeaderSize + itemLen
		if off%2 == 1 {
			dst[off] = 0
			off++
		}
	}

	return nil
}

// DecodeADTLChunk walks the item records until the byte range is
// exhausted, dispatching each via the adtl item registry.
func DecodeADTLChunk(_ Tag, data []byte) (Chunk, error) {
	c := &ADTLChunk{}

	off := 0
	for off < len(data) {
		if off+chunkHeaderSize > len(data) {
			return nil, fmt.Errorf("%s item header at offset %d: %w", TagAdtl, off, ErrLengthOutOfBounds)
		}

		itemTag := Tag(binary.BigEndian.Uint32(data[off : off+4]))
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		off += chunkHeaderSize

		if off+size > len(data) {
			return nil, fmt.Errorf("%s item %s claims %d bytes, have %d: %w",
				TagAdtl, itemTag, size, len(data)-off, ErrLengthOutOfBounds)
		}

		item, err := adtlChunks.Decode(itemTag, data[off:off+size])
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s item %s: %w", TagAdtl, itemTag, err)
		}

		c.Items = append(c.Items, item)

		off += size
		if off%2 == 1 {
			off++
		}
	}

	return c, nil
}

// LabelChunk attaches text to a cue point. It backs both labl and note
// items, which share the same record layout. The label is stored
// null-terminated with the body rounded up to an even byte count.
type LabelChunk struct {
	id    Tag
	CueID uint32
	Label string
}

// NewLabelChunk creates a labl item for the given cue point.
func NewLabelChunk(cueID uint32, label string) *LabelChunk {
	return &LabelChunk{id: TagLabl, CueID: cueID, Label: label}
}

// NewNoteChunk creates a note item for the given cue point.
func NewNoteChunk(cueID uint32, note string) *LabelChunk {
	return &LabelChunk{id: TagNote, CueID: cueID, Label: note}
}

func (c *LabelChunk) Tag() Tag {
	if c.id == 0 {
		return TagLabl
	}

	return c.id
}

func (c *LabelChunk) Length() int {
	return evenUp(4 + len(c.Label) + 1)
}

func (c *LabelChunk) Pack(dst []byte) error {
	n := c.Length()
	if len(dst) < n {
		return fmt.Errorf("%s chunk: %w", c.Tag(), errShortPackBuffer)
	}

	binary.LittleEndian.PutUint32(dst[0:4], c.CueID)
	copy(dst[4:], c.Label)

	// null terminator plus the alignment byte when the label length is even
	for i := 4 + len(c.Label); i < n; i++ {
		dst[i] = 0
	}

	return nil
}

// DecodeLabelChunk reads the cue ID and scans for the first zero byte;
// the bytes before it become the label. The conversion is best effort
// and never fails on invalid byte sequences.
func DecodeLabelChunk(tag Tag, data []byte) (Chunk, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%s chunk cue ID: %w", tag, ErrLengthOutOfBounds)
	}

	return &LabelChunk{
		id:    tag,
		CueID: binary.LittleEndian.Uint32(data[0:4]),
		Label: nullTermStr(data[4:]),
	}, nil
}

// INFO entry markers, see http://bwfmetaedit.sourceforge.net/listinfo.html
var (
	MarkerIART = TagFromString("IART")
	MarkerISFT = TagFromString("ISFT")
	MarkerICRD = TagFromString("ICRD")
	MarkerICOP = TagFromString("ICOP")
	MarkerIARL = TagFromString("IARL")
	MarkerINAM = TagFromString("INAM")
	MarkerIENG = TagFromString("IENG")
	MarkerIGNR = TagFromString("IGNR")
	MarkerIPRD = TagFromString("IPRD")
	MarkerISRC = TagFromString("ISRC")
	MarkerISBJ = TagFromString("ISBJ")
	MarkerICMT = TagFromString("ICMT")
	MarkerITRK = TagFromString("ITRK")
	MarkerITCH = TagFromString("ITCH")
	MarkerIKEY = TagFromString("IKEY")
	MarkerIMED = TagFromString("IMED")
)

// InfoEntry is a single INFO list string, e.g. MarkerIART -> artist.
type InfoEntry struct {
	ID    Tag
	Value string
}

// InfoChunk is the INFO body of a LIST chunk: ordered marker/string
// entries using the same record and padding rules as an adtl list.
type InfoChunk struct {
	Entries []InfoEntry
}

func (c *InfoChunk) Tag() Tag { return TagInfo }

func (c *InfoChunk) Length() int {
	n := 0
	for _, e := range c.Entries {
		n += chunkHeaderSize + len(e.Value) + 1
		if n%2 == 1 {
			n++
		}
	}

	return n
}

func (c *InfoChunk) Pack(dst []byte) error {
	if len(dst) < c.Length() {
		return fmt.Errorf("%s chunk: %w", TagInfo, errShortPackBuffer)
	}

	off := 0

	for _, e := range c.Entries {
		id := e.ID.ID()
		copy(dst[off:off+4], id[:])
		binary.LittleEndian.PutUint32(dst[off+4:off+8], uint32(len(e.Value)+1))
		off += chunkHeaderSize

		copy(dst[off:], e.Value)
		off += len(e.Value)
		dst[off] = 0
		off++

		if off%2 == 1 {
			dst[off] = 0
			off++
		}
	}

	return nil
}

// DecodeInfoChunk walks the INFO entries until the byte range is
// exhausted.
func DecodeInfoChunk(_ Tag, data []byte) (Chunk, error) {
	c := &InfoChunk{}

	off := 0
	for off < len(data) {
		if off+chunkHeaderSize > len(data) {
			return nil, fmt.Errorf("%s entry header at offset %d: %w", TagInfo, off, ErrLengthOutOfBounds)
		}

		id := Tag(binary.BigEndian.Uint32(data[off : off+4]))
		size := int(binary.LittleEndian.Uint32(data[off+4 : off+8]))
		off += chunkHeaderSize

		if off+size > len(data) {
			return nil, fmt.Errorf("%s entry %s claims %d bytes, have %d: %w",
				TagInfo, id, size, len(data)-off, ErrLengthOutOfBounds)
		}

		c.Entries = append(c.Entries, InfoEntry{ID: id, Value: nullTermStr(data[off : off+size])})

		off += size
		if off%2 == 1 {
			off++
		}
	}

	return c, nil
}

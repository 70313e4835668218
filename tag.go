package riffwav

import (
	"encoding/binary"

	"github.com/go-audio/riff"
)

// Tag is a RIFF FourCC chunk identifier. On the wire a tag is four ASCII
// bytes stored most-significant-byte-first, unlike every other numeric
// field in the format, which is little-endian.
type Tag uint32

// TagFromID converts a 4-byte chunk ID to a Tag.
func TagFromID(id [4]byte) Tag {
	return Tag(binary.BigEndian.Uint32(id[:]))
}

// TagFromString converts the first four characters of s to a Tag.
// Shorter strings are padded with spaces, per RIFF convention.
func TagFromString(s string) Tag {
	id := [4]byte{' ', ' ', ' ', ' '}
	copy(id[:], s)

	return TagFromID(id)
}

// ID returns the tag as its 4-byte wire representation.
func (t Tag) ID() [4]byte {
	var id [4]byte
	binary.BigEndian.PutUint32(id[:], uint32(t))

	return id
}

// String implements the Stringer interface.
func (t Tag) String() string {
	id := t.ID()
	return string(id[:])
}

// Well-known chunk tags. The ones the riff package exports are reused as-is.
var (
	// TagRIFF identifies the outer RIFF container.
	TagRIFF = TagFromID(riff.RiffID)
	// TagWAVE is the RIFF form type for wave files.
	TagWAVE = TagFromID(riff.WavFormatID)
	// TagFmt identifies the fmt chunk.
	TagFmt = TagFromID(riff.FmtID)
	// TagData identifies the data chunk.
	TagData = TagFromID(riff.DataFormatID)

	// TagList identifies a LIST chunk.
	TagList = TagFromString("LIST")
	// TagCue identifies the cue chunk.
	TagCue = TagFromString("cue ")
	// TagSmpl identifies the sampler chunk.
	TagSmpl = TagFromString("smpl")
	// TagBext identifies the broadcast extension chunk.
	TagBext = TagFromString("bext")
	// TagCart identifies the cart chunk.
	TagCart = TagFromString("cart")

	// TagAdtl is the LIST body type for associated data lists.
	TagAdtl = TagFromString("adtl")
	// TagInfo is the LIST body type for INFO metadata lists.
	TagInfo = TagFromString("INFO")

	// TagLabl identifies a cue label inside an adtl list.
	TagLabl = TagFromString("labl")
	// TagNote identifies a cue note inside an adtl list.
	TagNote = TagFromString("note")
)

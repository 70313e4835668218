package riffwav

import "errors"

var errShortPackBuffer = errors.New("pack destination too small")

// Chunk is a single tag-identified unit of a wave file. Length reports the
// exact byte count of the encoded body, excluding the 8-byte tag+length
// header and excluding any alignment pad applied by the parent. Pack
// serializes the body into dst, which must hold at least Length bytes.
type Chunk interface {
	Tag() Tag
	Length() int
	Pack(dst []byte) error
}

// ChunkDecoder decodes the body bytes of a chunk carrying the given tag.
// The returned chunk may alias data; callers that outlive the source
// buffer must clone it.
type ChunkDecoder func(tag Tag, data []byte) (Chunk, error)

// ChunkRegistry resolves chunk tags to decoders. Lookup misses are not
// errors: they fall back to UnknownChunk so unrecognized chunks still
// round-trip byte for byte.
type ChunkRegistry struct {
	decoders map[Tag]ChunkDecoder
}

// NewChunkRegistry returns an empty registry.
func NewChunkRegistry() *ChunkRegistry {
	return &ChunkRegistry{decoders: map[Tag]ChunkDecoder{}}
}

// Register maps a tag to a decoder, replacing any previous entry.
func (r *ChunkRegistry) Register(tag Tag, dec ChunkDecoder) {
	if r == nil || dec == nil {
		return
	}

	if r.decoders == nil {
		r.decoders = map[Tag]ChunkDecoder{}
	}

	r.decoders[tag] = dec
}

// Decode dispatches the chunk body to the registered decoder for tag,
// or to the UnknownChunk fallback when the tag is not registered.
func (r *ChunkRegistry) Decode(tag Tag, data []byte) (Chunk, error) {
	if r != nil {
		if dec, ok := r.decoders[tag]; ok {
			return dec(tag, data)
		}
	}

	return DecodeUnknownChunk(tag, data)
}

// The legal tag sets differ by nesting context, so three independent
// registries exist: chunks at the top level of a file, LIST body types,
// and items inside an adtl list.
var (
	topLevelChunks = newTopLevelRegistry()
	listBodyChunks = newListBodyRegistry()
	adtlChunks     = newADTLRegistry()
)

func newTopLevelRegistry() *ChunkRegistry {
	r := NewChunkRegistry()
	r.Register(TagFmt, DecodeFmtChunk)
	r.Register(TagData, DecodeDataChunk)
	r.Register(TagCue, DecodeCueChunk)
	r.Register(TagSmpl, DecodeSmplChunk)
	r.Register(TagList, DecodeListChunk)
	r.Register(TagBext, DecodeBextChunk)
	r.Register(TagCart, DecodeCartChunk)

	return r
}

func newListBodyRegistry() *ChunkRegistry {
	r := NewChunkRegistry()
	r.Register(TagAdtl, DecodeADTLChunk)
	r.Register(TagInfo, DecodeInfoChunk)

	return r
}

func newADTLRegistry() *ChunkRegistry {
	r := NewChunkRegistry()
	r.Register(TagLabl, DecodeLabelChunk)
	r.Register(TagNote, DecodeLabelChunk)

	return r
}

// Package riffwav decodes and encodes RIFF/WAVE files as an in-memory
// chunk object model.
//
// Decode parses a byte buffer into a Wave holding an ordered chunk
// sequence; Wave.Encode serializes it back. Tags are dispatched through
// per-context registries (top level, LIST body, adtl item) and
// unrecognized chunks are preserved verbatim through UnknownChunk, so
// files carrying vendor extensions round-trip byte for byte.
//
// Decoded chunks alias the source buffer where possible (data payload,
// fmt extension, sampler data, unknown chunks). A caller that needs a
// chunk to outlive the buffer must Clone it. The audio payload itself is
// opaque: DataChunk exposes zero-copy sample views but no transcoding.
package riffwav

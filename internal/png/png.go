package png

import (
	"bytes"
	"fmt"
)

// SignatureSize is the length of the file signature.
const SignatureSize = 8

// Signature is the fixed 8-byte prefix of every PNG file.
var Signature = [SignatureSize]byte{137, 80, 78, 71, 13, 10, 26, 10}

// PNG is an ordered sequence of chunks behind the standard signature.
// Order is preserved on serialization and decides which chunk "first"
// means for lookup and removal. A PNG is not safe for concurrent mutation.
type PNG struct {
	chunks []Chunk
}

// New returns a container holding the given chunks in order.
func New(chunks ...Chunk) *PNG {
	return &PNG{chunks: append([]Chunk(nil), chunks...)}
}

// Parse decodes a full file. It fails on a bad signature or on the first
// chunk that does not decode.
func Parse(b []byte) (*PNG, error) {
	if len(b) < SignatureSize {
		return nil, newError("parse.png", KindBadSignature, fmt.Errorf("need %d signature bytes, have %d", SignatureSize, len(b)))
	}
	if !bytes.Equal(b[:SignatureSize], Signature[:]) {
		return nil, newError("parse.png", KindBadSignature, fmt.Errorf("got % x", b[:SignatureSize]))
	}

	p := &PNG{}
	rest := b[SignatureSize:]
	offset := SignatureSize
	for len(rest) > 0 {
		c, n, err := readChunk(rest)
		if err != nil {
			return nil, fmt.Errorf("chunk %d at offset %d: %w", len(p.chunks), offset, err)
		}
		p.chunks = append(p.chunks, c)
		rest = rest[n:]
		offset += n
	}
	return p, nil
}

// Chunks returns the chunks in stored order. The slice is a copy.
func (p *PNG) Chunks() []Chunk {
	return append([]Chunk(nil), p.chunks...)
}

// Len returns the number of chunks.
func (p *PNG) Len() int { return len(p.chunks) }

// AppendChunk adds c at the end. Duplicate types are allowed.
func (p *PNG) AppendChunk(c Chunk) {
	p.chunks = append(p.chunks, c)
}

// ChunkByType returns the first chunk whose type renders as name.
func (p *PNG) ChunkByType(name string) (Chunk, bool) {
	if i := p.index(name); i >= 0 {
		return p.chunks[i], true
	}
	return Chunk{}, false
}

// RemoveFirstChunk removes and returns the first chunk whose type renders
// as name. Later chunks keep their relative order.
func (p *PNG) RemoveFirstChunk(name string) (Chunk, error) {
	i := p.index(name)
	if i < 0 {
		return Chunk{}, newError("png.remove", KindChunkNotFound, fmt.Errorf("type %q", name))
	}
	c := p.chunks[i]
	p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
	return c, nil
}

func (p *PNG) index(name string) int {
	for i, c := range p.chunks {
		s, err := c.typ.Text()
		if err == nil && s == name {
			return i
		}
	}
	return -1
}

// Size is the serialized size: signature plus every framed chunk.
func (p *PNG) Size() int {
	n := SignatureSize
	for _, c := range p.chunks {
		n += c.Size()
	}
	return n
}

// Bytes serializes the container. It is the inverse of Parse.
func (p *PNG) Bytes() []byte {
	out := make([]byte, 0, p.Size())
	out = append(out, Signature[:]...)
	for _, c := range p.chunks {
		out = c.appendTo(out)
	}
	return out
}

// Equal reports whether both containers hold equal chunks in the same order.
func (p *PNG) Equal(o *PNG) bool {
	if len(p.chunks) != len(o.chunks) {
		return false
	}
	for i := range p.chunks {
		if !p.chunks[i].Equal(o.chunks[i]) {
			return false
		}
	}
	return true
}

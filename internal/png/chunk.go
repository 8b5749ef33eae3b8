package png

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"
	"unicode/utf8"
)

const (
	lengthSize = 4
	typeSize   = 4
	crcSize    = 4

	// MinChunkSize is the framing overhead of a chunk with no data.
	MinChunkSize = lengthSize + typeSize + crcSize
)

// Chunk is a single framed record. Construct with NewChunk or ParseChunk;
// the zero value is not meaningful.
type Chunk struct {
	length uint32
	typ    ChunkType
	data   []byte
	crc    uint32
}

// NewChunk frames data under typ. data is copied.
func NewChunk(typ ChunkType, data []byte) Chunk {
	d := bytes.Clone(data)
	if d == nil {
		d = []byte{}
	}
	return Chunk{
		length: uint32(len(d)),
		typ:    typ,
		data:   d,
		crc:    checksum(typ, d),
	}
}

// ParseChunk decodes the chunk at the start of b and verifies its CRC.
// Bytes after the CRC are ignored.
func ParseChunk(b []byte) (Chunk, error) {
	c, _, err := readChunk(b)
	return c, err
}

// readChunk decodes one chunk and reports how many bytes it consumed.
func readChunk(b []byte) (Chunk, int, error) {
	if len(b) < MinChunkSize {
		return Chunk{}, 0, newError("parse.chunk", KindTooShort, fmt.Errorf("need at least %d bytes, have %d", MinChunkSize, len(b)))
	}
	length := binary.BigEndian.Uint32(b[0:4])
	var typ ChunkType
	copy(typ[:], b[4:8])

	// uint64 so a large declared length cannot overflow int on 32-bit targets.
	total := uint64(MinChunkSize) + uint64(length)
	if uint64(len(b)) < total {
		return Chunk{}, 0, newError("parse.chunk", KindTruncated, fmt.Errorf("type %s declares %d data bytes, only %d remain", typ, length, len(b)-MinChunkSize))
	}
	end := lengthSize + typeSize + int(length)
	data := bytes.Clone(b[8:end])
	stored := binary.BigEndian.Uint32(b[end : end+crcSize])

	if got := checksum(typ, data); got != stored {
		return Chunk{}, 0, newError("parse.chunk", KindCRCMismatch, fmt.Errorf("type %s: stored %08x, computed %08x", typ, stored, got))
	}
	return Chunk{length: length, typ: typ, data: data, crc: stored}, int(total), nil
}

func checksum(typ ChunkType, data []byte) uint32 {
	h := crc32.NewIEEE()
	h.Write(typ[:])
	h.Write(data)
	return h.Sum32()
}

// Length is the number of data bytes.
func (c Chunk) Length() uint32 { return c.length }

// Type returns the chunk type code.
func (c Chunk) Type() ChunkType { return c.typ }

// Data returns a copy of the payload.
func (c Chunk) Data() []byte { return bytes.Clone(c.data) }

// CRC returns the checksum over type and data.
func (c Chunk) CRC() uint32 { return c.crc }

// Size is the serialized size of the chunk.
func (c Chunk) Size() int { return MinChunkSize + len(c.data) }

// DataAsText returns the payload as a string. Fails with KindInvalidUTF8
// when the payload is not UTF-8 text.
func (c Chunk) DataAsText() (string, error) {
	if !utf8.Valid(c.data) {
		return "", newError("chunk.text", KindInvalidUTF8, fmt.Errorf("type %s payload is not utf-8", c.typ))
	}
	return string(c.data), nil
}

// Bytes serializes the chunk. It is the inverse of ParseChunk.
func (c Chunk) Bytes() []byte {
	out := make([]byte, 0, c.Size())
	return c.appendTo(out)
}

func (c Chunk) appendTo(out []byte) []byte {
	out = binary.BigEndian.AppendUint32(out, c.length)
	out = append(out, c.typ[:]...)
	out = append(out, c.data...)
	return binary.BigEndian.AppendUint32(out, c.crc)
}

// Equal reports whether all four fields match.
func (c Chunk) Equal(o Chunk) bool {
	return c.length == o.length && c.typ == o.typ && c.crc == o.crc && bytes.Equal(c.data, o.data)
}

// String renders the multi-line summary shown by the print command.
func (c Chunk) String() string {
	var sb strings.Builder
	sb.WriteString("Chunk {\n")
	fmt.Fprintf(&sb, "  Length: %d\n", c.length)
	fmt.Fprintf(&sb, "  Type: %s\n", c.typ)
	fmt.Fprintf(&sb, "  Data: %d bytes\n", len(c.data))
	fmt.Fprintf(&sb, "  Crc: %d\n", c.crc)
	sb.WriteString("}")
	return sb.String()
}

package png

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

const testMessage = "This is where your secret message will be!"

// rawChunk frames the given fields without computing anything.
func rawChunk(length uint32, typ string, data []byte, crc uint32) []byte {
	var b []byte
	b = binary.BigEndian.AppendUint32(b, length)
	b = append(b, typ...)
	b = append(b, data...)
	return binary.BigEndian.AppendUint32(b, crc)
}

func testingChunk(t *testing.T) Chunk {
	t.Helper()
	c, err := ParseChunk(rawChunk(42, "RuSt", []byte(testMessage), 2882656334))
	if err != nil {
		t.Fatalf("parse chunk: %v", err)
	}
	return c
}

func mustType(t *testing.T, s string) ChunkType {
	t.Helper()
	ct, err := ParseChunkType(s)
	if err != nil {
		t.Fatalf("parse type %q: %v", s, err)
	}
	return ct
}

func TestNewChunk(t *testing.T) {
	c := NewChunk(mustType(t, "RuSt"), []byte(testMessage))
	if c.Length() != 42 {
		t.Errorf("expected length 42, got %d", c.Length())
	}
	if c.CRC() != 2882656334 {
		t.Errorf("expected crc 2882656334, got %d", c.CRC())
	}
}

func TestNewChunk_CopiesData(t *testing.T) {
	data := []byte("hello")
	c := NewChunk(mustType(t, "ruSt"), data)
	data[0] = 'j'
	if got, _ := c.DataAsText(); got != "hello" {
		t.Errorf("chunk data changed with caller slice: %q", got)
	}
	out := c.Data()
	out[0] = 'j'
	if got, _ := c.DataAsText(); got != "hello" {
		t.Errorf("chunk data changed through Data(): %q", got)
	}
}

func TestParseChunk(t *testing.T) {
	c := testingChunk(t)
	if c.Length() != 42 {
		t.Errorf("expected length 42, got %d", c.Length())
	}
	if c.Type().String() != "RuSt" {
		t.Errorf("expected type RuSt, got %s", c.Type())
	}
	if c.CRC() != 2882656334 {
		t.Errorf("expected crc 2882656334, got %d", c.CRC())
	}
	text, err := c.DataAsText()
	if err != nil {
		t.Fatalf("data as text: %v", err)
	}
	if text != testMessage {
		t.Errorf("expected %q, got %q", testMessage, text)
	}
}

func TestParseChunk_CRCMismatch(t *testing.T) {
	_, err := ParseChunk(rawChunk(42, "RuSt", []byte(testMessage), 2882656333))
	if !errors.Is(err, ErrCRCMismatch) {
		t.Fatalf("expected crc mismatch, got %v", err)
	}
	if KindOf(err) != KindCRCMismatch {
		t.Errorf("expected KindCRCMismatch, got %v", KindOf(err))
	}
}

func TestParseChunk_TooShort(t *testing.T) {
	for n := 0; n < MinChunkSize; n++ {
		_, err := ParseChunk(make([]byte, n))
		if !errors.Is(err, ErrTooShort) {
			t.Errorf("len %d: expected too short, got %v", n, err)
		}
	}
}

func TestParseChunk_Truncated(t *testing.T) {
	b := rawChunk(42, "RuSt", []byte(testMessage), 2882656334)
	_, err := ParseChunk(b[:len(b)-1])
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncated, got %v", err)
	}

	huge := rawChunk(0xFFFFFFFF, "RuSt", nil, 0)
	if _, err := ParseChunk(huge); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected truncated for oversized length, got %v", err)
	}
}

func TestParseChunk_IgnoresTrailingBytes(t *testing.T) {
	b := append(rawChunk(42, "RuSt", []byte(testMessage), 2882656334), 1, 2, 3)
	c, err := ParseChunk(b)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Size() != len(b)-3 {
		t.Errorf("expected size %d, got %d", len(b)-3, c.Size())
	}
}

func TestChunkRoundTrip(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("x"), []byte(testMessage), {0, 0xff, 0x10}} {
		c := NewChunk(mustType(t, "ruSt"), data)
		got, err := ParseChunk(c.Bytes())
		if err != nil {
			t.Fatalf("parse %q: %v", data, err)
		}
		if !got.Equal(c) {
			t.Errorf("round trip mismatch for %q", data)
		}
	}
}

func TestChunk_SingleBitFlips(t *testing.T) {
	b := NewChunk(mustType(t, "ruSt"), []byte("hello")).Bytes()
	// type and data region only; crc stays fixed
	for i := lengthSize; i < len(b)-crcSize; i++ {
		for bit := 0; bit < 8; bit++ {
			flipped := append([]byte(nil), b...)
			flipped[i] ^= 1 << bit
			if _, err := ParseChunk(flipped); !errors.Is(err, ErrCRCMismatch) {
				t.Fatalf("byte %d bit %d: expected crc mismatch, got %v", i, bit, err)
			}
		}
	}
}

func TestChunkDataAsText_InvalidUTF8(t *testing.T) {
	c := NewChunk(mustType(t, "ruSt"), []byte{0xff, 0xfe})
	if _, err := c.DataAsText(); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected invalid utf-8, got %v", err)
	}
}

func TestChunkString(t *testing.T) {
	s := testingChunk(t).String()
	for _, want := range []string{"Chunk {", "Length: 42", "Type: RuSt", "Data: 42 bytes", "Crc: 2882656334"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected %q in %q", want, s)
		}
	}
}

func TestChunkEqual(t *testing.T) {
	a := NewChunk(mustType(t, "ruSt"), []byte("a"))
	if !a.Equal(NewChunk(mustType(t, "ruSt"), []byte("a"))) {
		t.Error("identical chunks should be equal")
	}
	if a.Equal(NewChunk(mustType(t, "ruSt"), []byte("b"))) {
		t.Error("different data should not be equal")
	}
	if a.Equal(NewChunk(mustType(t, "RuSt"), []byte("a"))) {
		t.Error("different type should not be equal")
	}
}

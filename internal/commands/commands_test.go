package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/UberChili/pngmev2/internal/png"
)

func testFile(t *testing.T) []byte {
	t.Helper()
	ihdr, _ := png.ParseChunkType("IHDR")
	iend, _ := png.ParseChunkType("IEND")
	return png.New(
		png.NewChunk(ihdr, []byte{0, 0, 0, 1, 0, 0, 0, 1, 8, 6, 0, 0, 0}),
		png.NewChunk(iend, nil),
	).Bytes()
}

func TestEncodeDecode(t *testing.T) {
	out, c, err := Encode(testFile(t), "ruSt", "hidden message")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if c.Type().String() != "ruSt" || c.Length() != uint32(len("hidden message")) {
		t.Errorf("unexpected chunk %v", c)
	}

	msg, err := Decode(out, "ruSt")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg != "hidden message" {
		t.Errorf("expected %q, got %q", "hidden message", msg)
	}
}

func TestEncode_InvalidType(t *testing.T) {
	_, _, err := Encode(testFile(t), "ru5t", "x")
	if !errors.Is(err, png.ErrInvalidTypeCode) {
		t.Fatalf("expected invalid type code, got %v", err)
	}
}

func TestEncode_NotPNG(t *testing.T) {
	_, _, err := Encode([]byte("GIF89a.."), "ruSt", "x")
	if !errors.Is(err, png.ErrBadSignature) {
		t.Fatalf("expected bad signature, got %v", err)
	}
}

func TestDecode_Missing(t *testing.T) {
	_, err := Decode(testFile(t), "ruSt")
	if !errors.Is(err, png.ErrChunkNotFound) {
		t.Fatalf("expected chunk not found, got %v", err)
	}
}

func TestDecode_NotText(t *testing.T) {
	out, _, err := Restore(testFile(t), "ruSt", []byte{0xff, 0xfe, 0xfd})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if _, err := Decode(out, "ruSt"); !errors.Is(err, png.ErrInvalidUTF8) {
		t.Fatalf("expected invalid utf-8, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	orig := testFile(t)
	withMsg, _, _ := Encode(orig, "ruSt", "bye")

	out, removed, err := Remove(withMsg, "ruSt")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if text, _ := removed.DataAsText(); text != "bye" {
		t.Errorf("unexpected removed data %q", text)
	}
	if !bytes.Equal(out, orig) {
		t.Error("encode then remove should restore the original bytes")
	}

	if _, _, err := Remove(out, "ruSt"); !errors.Is(err, png.ErrChunkNotFound) {
		t.Fatalf("expected chunk not found, got %v", err)
	}
}

func TestRestoreAfterRemove(t *testing.T) {
	withMsg, _, _ := Encode(testFile(t), "ruSt", "again")
	out, removed, _ := Remove(withMsg, "ruSt")

	restored, c, err := Restore(out, removed.Type().String(), removed.Data())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !c.Equal(removed) {
		t.Error("restored chunk differs from removed chunk")
	}
	if !bytes.Equal(restored, withMsg) {
		t.Error("restore of a trailing chunk should reproduce the file")
	}
}

func TestPrintText(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, testFile(t), FormatText); err != nil {
		t.Fatalf("print: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "Chunk {") != 2 {
		t.Errorf("expected 2 chunk blocks, got %q", out)
	}
	if !strings.Contains(out, "Type: IHDR") || !strings.Contains(out, "Type: IEND") {
		t.Errorf("missing types in %q", out)
	}
}

func TestPrintJSON(t *testing.T) {
	withMsg, _, _ := Encode(testFile(t), "ruSt", "hi")
	var buf bytes.Buffer
	if err := Print(&buf, withMsg, FormatJSON); err != nil {
		t.Fatalf("print: %v", err)
	}
	var got []ChunkSummary
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(got))
	}
	last := got[2]
	if last.Type != "ruSt" || last.Critical || last.Public || !last.SafeToCopy || !last.Valid || last.Length != 2 {
		t.Errorf("unexpected summary %+v", last)
	}
}

func TestPrint_UnknownFormat(t *testing.T) {
	if err := Print(&bytes.Buffer{}, testFile(t), "yaml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

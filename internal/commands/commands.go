// Package commands implements the pngme operations over in-memory file bytes.
// Callers read and write the files; every function here is pure.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/UberChili/pngmev2/internal/png"
)

// Output formats accepted by Print.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Encode appends a chunk of typeCode carrying message and returns the new
// file bytes together with the chunk that was written.
func Encode(file []byte, typeCode, message string) ([]byte, png.Chunk, error) {
	return appendChunk(file, typeCode, []byte(message))
}

// Restore appends a chunk of typeCode carrying raw data.
func Restore(file []byte, typeCode string, data []byte) ([]byte, png.Chunk, error) {
	return appendChunk(file, typeCode, data)
}

func appendChunk(file []byte, typeCode string, data []byte) ([]byte, png.Chunk, error) {
	p, err := png.Parse(file)
	if err != nil {
		return nil, png.Chunk{}, fmt.Errorf("parse file: %w", err)
	}
	ct, err := png.ParseChunkType(typeCode)
	if err != nil {
		return nil, png.Chunk{}, err
	}
	c := png.NewChunk(ct, data)
	p.AppendChunk(c)
	return p.Bytes(), c, nil
}

// Decode returns the text held by the first chunk of typeCode.
func Decode(file []byte, typeCode string) (string, error) {
	p, err := png.Parse(file)
	if err != nil {
		return "", fmt.Errorf("parse file: %w", err)
	}
	if _, err := png.ParseChunkType(typeCode); err != nil {
		return "", err
	}
	c, ok := p.ChunkByType(typeCode)
	if !ok {
		return "", &png.FormatError{Op: "decode", Kind: png.KindChunkNotFound, Err: fmt.Errorf("no message of type %q in file", typeCode)}
	}
	return c.DataAsText()
}

// Remove drops the first chunk of typeCode and returns the new file bytes
// together with the removed chunk.
func Remove(file []byte, typeCode string) ([]byte, png.Chunk, error) {
	p, err := png.Parse(file)
	if err != nil {
		return nil, png.Chunk{}, fmt.Errorf("parse file: %w", err)
	}
	if _, err := png.ParseChunkType(typeCode); err != nil {
		return nil, png.Chunk{}, err
	}
	c, err := p.RemoveFirstChunk(typeCode)
	if err != nil {
		return nil, png.Chunk{}, err
	}
	return p.Bytes(), c, nil
}

// ChunkSummary is the JSON form of a chunk written by Print.
type ChunkSummary struct {
	Index      int    `json:"index"`
	Length     uint32 `json:"length"`
	Type       string `json:"type"`
	Critical   bool   `json:"critical"`
	Public     bool   `json:"public"`
	SafeToCopy bool   `json:"safe_to_copy"`
	Valid      bool   `json:"valid"`
	CRC        uint32 `json:"crc"`
}

// Summarize describes every chunk in file order.
func Summarize(file []byte) ([]ChunkSummary, error) {
	p, err := png.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}
	out := make([]ChunkSummary, 0, p.Len())
	for i, c := range p.Chunks() {
		ct := c.Type()
		out = append(out, ChunkSummary{
			Index:      i,
			Length:     c.Length(),
			Type:       ct.String(),
			Critical:   ct.IsCritical(),
			Public:     ct.IsPublic(),
			SafeToCopy: ct.IsSafeToCopy(),
			Valid:      ct.IsValid(),
			CRC:        c.CRC(),
		})
	}
	return out, nil
}

// Print writes every chunk's summary to w.
func Print(w io.Writer, file []byte, format string) error {
	switch format {
	case FormatJSON:
		summaries, err := Summarize(file)
		if err != nil {
			return err
		}
		b, _ := json.MarshalIndent(summaries, "", "  ")
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatText, "":
		p, err := png.Parse(file)
		if err != nil {
			return fmt.Errorf("parse file: %w", err)
		}
		for _, c := range p.Chunks() {
			if _, err := fmt.Fprintln(w, c); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown format %q (use text or json)", format)
}

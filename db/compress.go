package db

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
)

// deflate compresses document text at the default level.
func deflate(text []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create deflate writer: %w", err)
	}
	if _, err := w.Write(text); err != nil {
		return nil, fmt.Errorf("failed to compress document: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress document: %w", err)
	}
	return buf.Bytes(), nil
}

// inflate restores document text from a compressed blob.
func inflate(blob []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(blob))
	text, err := io.ReadAll(r)
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("failed to decompress document: %w", err)
	}
	if err := r.Close(); err != nil {
		return nil, fmt.Errorf("failed to decompress document: %w", err)
	}
	return text, nil
}

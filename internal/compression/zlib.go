// Package compression implements the stream compression applied to
// objects before they hit the disk.
package compression

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// DefaultLevel is the zlib level used when none is configured.
const DefaultLevel = zlib.DefaultCompression

// Compressor wraps data in a zlib stream, the container git uses for
// loose objects.
type Compressor struct {
	level int
}

// NewCompressor returns a Compressor for the given zlib level
// (-2 for Huffman only, -1 for the library default, 0 to 9 otherwise).
func NewCompressor(level int) (*Compressor, error) {
	// Let the library validate the level once, up front.
	w, err := zlib.NewWriterLevel(io.Discard, level)
	if err != nil {
		return nil, fmt.Errorf("compression level %d: %w", level, err)
	}
	_ = w.Close()

	return &Compressor{level: level}, nil
}

// Level reports the configured zlib level.
func (c *Compressor) Level() int { return c.level }

func (c *Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := zlib.NewWriterLevel(&buf, c.level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress inflates a complete zlib stream. Truncated streams and
// checksum mismatches are reported as errors.
func (c *Compressor) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}

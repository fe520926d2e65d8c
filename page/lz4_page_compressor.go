package page

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-sif/lazyrow"
	"github.com/pierrec/lz4"
)

// LZ4Compressor is a page compressor which uses the lz4 compression algorithm
type LZ4Compressor struct {
	compressor         *lz4.Writer
	decompressor       *lz4.Reader
	reusableReadBuffer *bytes.Buffer
}

// NewLZ4Compressor instantiates a new LZ4Compressor
func NewLZ4Compressor() *LZ4Compressor {
	return &LZ4Compressor{
		compressor:         lz4.NewWriter(new(bytes.Buffer)),
		decompressor:       lz4.NewReader(new(bytes.Buffer)),
		reusableReadBuffer: new(bytes.Buffer),
	}
}

// Compress serializes and compresses page data to a write stream
func (c *LZ4Compressor) Compress(w io.Writer, p lazyrow.Page) error {
	c.compressor.Reset(w)
	if _, err := c.compressor.Write(ToBytes(p)); err != nil {
		return fmt.Errorf("unable to compress page data: %w", err)
	}
	return c.compressor.Close()
}

// Decompress decompresses and deserializes page data from a read stream
func (c *LZ4Compressor) Decompress(r io.Reader, types []lazyrow.ColumnType) (*Columnar, error) {
	c.decompressor.Reset(r)
	c.reusableReadBuffer.Reset()
	if _, err := c.reusableReadBuffer.ReadFrom(c.decompressor); err != nil {
		return nil, fmt.Errorf("unable to decompress page data: %w", err)
	}
	return FromBytes(c.reusableReadBuffer.Bytes(), types)
}

// Destroy is a no-op for LZ4Compressor
func (c *LZ4Compressor) Destroy() {}

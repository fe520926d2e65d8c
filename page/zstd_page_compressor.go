package page

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-sif/lazyrow"
	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor is a page compressor which uses the zstd compression algorithm. It
// trades speed for a better compression ratio than LZ4Compressor.
type ZstdCompressor struct {
	compressor         *zstd.Encoder
	decompressor       *zstd.Decoder
	reusableReadBuffer *bytes.Buffer
}

// NewZstdCompressor instantiates a new ZstdCompressor
func NewZstdCompressor() (*ZstdCompressor, error) {
	compressor, err := zstd.NewWriter(new(bytes.Buffer), zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("unable to initialize compressor: %w", err)
	}
	decompressor, err := zstd.NewReader(new(bytes.Buffer))
	if err != nil {
		compressor.Close()
		return nil, fmt.Errorf("unable to initialize decompressor: %w", err)
	}
	return &ZstdCompressor{
		compressor:         compressor,
		decompressor:       decompressor,
		reusableReadBuffer: new(bytes.Buffer),
	}, nil
}

// Compress serializes and compresses page data to a write stream
func (c *ZstdCompressor) Compress(w io.Writer, p lazyrow.Page) error {
	c.compressor.Reset(w)
	if _, err := c.compressor.Write(ToBytes(p)); err != nil {
		return fmt.Errorf("unable to compress page data: %w", err)
	}
	return c.compressor.Close()
}

// Decompress decompresses and deserializes page data from a read stream
func (c *ZstdCompressor) Decompress(r io.Reader, types []lazyrow.ColumnType) (*Columnar, error) {
	if err := c.decompressor.Reset(r); err != nil {
		return nil, fmt.Errorf("unable to decompress page data: %w", err)
	}
	c.reusableReadBuffer.Reset()
	if _, err := c.reusableReadBuffer.ReadFrom(c.decompressor); err != nil {
		return nil, fmt.Errorf("unable to decompress page data: %w", err)
	}
	return FromBytes(c.reusableReadBuffer.Bytes(), types)
}

// Destroy releases the goroutines held by the zstd encoder and decoder
func (c *ZstdCompressor) Destroy() {
	c.compressor.Close()
	c.decompressor.Close()
}

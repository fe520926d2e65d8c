package page

import (
	"io"

	"github.com/go-sif/lazyrow"
)

// A Compressor serializes and compresses Page data (and the inverse). Compressors
// reuse internal buffers, and are therefore not safe for concurrent use.
type Compressor interface {
	Compress(w io.Writer, p lazyrow.Page) error                            // Compress serializes and compresses page data to a write stream
	Decompress(r io.Reader, types []lazyrow.ColumnType) (*Columnar, error) // Decompress decompresses and deserializes page data from a read stream
	Destroy()                                                              // Destroy cleans up anything relevant when the Compressor is no longer needed
}

package memory

import "github.com/go-sif/lazyrow"

// PageMap is an iterator producing a sequence of PageLoaders
type PageMap struct {
	idx    int
	source *DataSource
}

// HasNext returns true iff there is another PageLoader remaining
func (pm *PageMap) HasNext() bool {
	return pm.idx < len(pm.source.data)
}

// Next returns the next PageLoader for a buffer
func (pm *PageMap) Next() lazyrow.PageLoader {
	result := &PageLoader{idx: pm.idx, source: pm.source}
	pm.idx++
	return result
}

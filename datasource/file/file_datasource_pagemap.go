package file

import "github.com/go-sif/lazyrow"

// PageMap is an iterator producing a sequence of PageLoaders, one per file
type PageMap struct {
	files  []string
	source *DataSource
}

// HasNext returns true iff there is another PageLoader remaining
func (pm *PageMap) HasNext() bool {
	return len(pm.files) > 0
}

// Next returns the next PageLoader for a file
func (pm *PageMap) Next() lazyrow.PageLoader {
	result := &PageLoader{path: pm.files[0], source: pm.source}
	pm.files = pm.files[1:]
	return result
}

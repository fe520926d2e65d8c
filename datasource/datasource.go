// Package datasource provides DataSources which feed Pages to consumers of lazyrow, along with
// DataSourceParsers (see the parser sub-packages) which turn encoded data into Pages.
package datasource

import "github.com/go-sif/lazyrow"

// LoadAll loads every Page from a DataSource, in order, using the given parser
func LoadAll(source lazyrow.DataSource, parser lazyrow.DataSourceParser) ([]lazyrow.Page, error) {
	pm, err := source.Analyze()
	if err != nil {
		return nil, err
	}
	var pages []lazyrow.Page
	for pm.HasNext() {
		pl := pm.Next()
		it, err := pl.Load(parser)
		if err != nil {
			return nil, err
		}
		for it.HasNextPage() {
			p, err := it.NextPage()
			if err != nil {
				return nil, err
			}
			if p.PositionCount() > 0 {
				pages = append(pages, p)
			}
		}
	}
	return pages, nil
}

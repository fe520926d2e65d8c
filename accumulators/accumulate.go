package accumulators

import (
	"github.com/go-sif/lazyrow"
	"github.com/go-sif/lazyrow/row"
)

// AccumulatePage adds every position of a Page to an Accumulator, reading each
// position through a LazyRow so that only the fields the Accumulator reads are decoded.
func AccumulatePage(acc lazyrow.Accumulator, types []lazyrow.ColumnType, p lazyrow.Page) error {
	for i := 0; i < p.PositionCount(); i++ {
		view, err := row.CreateLazyRow(types, p, i)
		if err != nil {
			return err
		}
		if err := acc.Accumulate(view); err != nil {
			return err
		}
	}
	return nil
}

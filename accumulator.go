package lazyrow

// An Accumulator is a reduction technique which siphons data from rows into a
// custom data structure. Accumulators read rows through a RowView, so they only
// pay to decode the fields they actually inspect. Partial Accumulators built over
// different Pages (or in different goroutines) are combined with Merge.
type Accumulator interface {
	Accumulate(row RowView) error              // Accumulate adds a row to this Accumulator
	Merge(o Accumulator) error                 // Merge merges another Accumulator into this one
	ToBytes() ([]byte, error)                  // ToBytes serializes this Accumulator
	FromBytes(buf []byte) (Accumulator, error) // FromBytes produce a new Accumulator from serialized data
}

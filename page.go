package lazyrow

// Page is a batch of rows stored channel-by-channel. Each channel holds the values of one
// column for every position in the Page. Pages are read-only once they are handed to a Row.
type Page interface {
	ChannelCount() int       // ChannelCount returns the number of channels (columns) in this Page
	PositionCount() int      // PositionCount returns the number of positions (rows) in this Page
	Block(channel int) Block // Block returns the data for a channel, 0 <= channel < ChannelCount()
}

// Block is the data for a single channel of a Page
type Block interface {
	PositionCount() int        // PositionCount returns the number of positions in this Block
	IsNull(position int) bool  // IsNull returns true iff the value at position is null
	Value(position int) []byte // Value returns the raw, encoded value at position. Callers must not modify the result.
}

// ValueExtractor decodes the value at position within a Block, according to the logical type
// of the Block's channel. Null values decode to nil. Implementations must be deterministic and
// free of side effects for a given (block, position, colType).
type ValueExtractor func(block Block, position int, colType ColumnType) (interface{}, error)

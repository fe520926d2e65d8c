package deletes

import (
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/go-sif/lazyrow"
	"github.com/go-sif/lazyrow/codec"
	errors "github.com/go-sif/lazyrow/errors"
	"github.com/go-sif/lazyrow/logging"
	"github.com/rs/zerolog"
)

var validate = validator.New()

// FilterConf configures an EqualityDeleteFilter
type FilterConf struct {
	// DataTypes are the ColumnTypes of the channels of filtered data Pages
	DataTypes []lazyrow.ColumnType `validate:"required,min=1,dive,required"`
	// EqualityChannels are the data channels compared against delete keys. Delete Pages hold exactly these channels, in this order.
	EqualityChannels []int `validate:"required,min=1,unique,dive,gte=0"`
	// Parallelism is the maximum number of Pages filtered concurrently by FilterPages. Defaults to runtime.NumCPU().
	Parallelism int `validate:"gte=0"`
	// IgnoreRowErrors retains rows which cannot be decoded, returning their errors alongside the result
	IgnoreRowErrors bool
	// Extractor decodes values from data Pages. Defaults to codec.Decode.
	Extractor lazyrow.ValueExtractor `validate:"-"`
	// Logger defaults to logging.NewLogger()
	Logger *zerolog.Logger `validate:"-"`
}

// withDefaults validates a FilterConf and returns a copy in which zero values have been replaced by defaults
func (conf *FilterConf) withDefaults() (*FilterConf, error) {
	if conf == nil {
		return nil, errors.InvalidArgumentError{Msg: "conf is nil"}
	}
	if err := validate.Struct(conf); err != nil {
		return nil, errors.InvalidArgumentError{Msg: err.Error()}
	}
	for _, ch := range conf.EqualityChannels {
		if ch >= len(conf.DataTypes) {
			return nil, errors.InvalidArgumentError{Msg: fmt.Sprintf("equality channel %d out of range for %d data channels", ch, len(conf.DataTypes))}
		}
	}
	res := *conf
	if res.Parallelism == 0 {
		res.Parallelism = runtime.NumCPU()
	}
	if res.Extractor == nil {
		res.Extractor = codec.Decode
	}
	if res.Logger == nil {
		logger := logging.NewLogger()
		res.Logger = &logger
	}
	return &res, nil
}

// equalityTypes returns the ColumnTypes of the equality channels, which are also the channels of delete Pages
func (conf *FilterConf) equalityTypes() []lazyrow.ColumnType {
	types := make([]lazyrow.ColumnType, len(conf.EqualityChannels))
	for i, ch := range conf.EqualityChannels {
		types[i] = conf.DataTypes[ch]
	}
	return types
}

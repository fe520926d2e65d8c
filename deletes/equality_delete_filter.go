package deletes

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-sif/lazyrow"
	"github.com/go-sif/lazyrow/codec"
	"github.com/go-sif/lazyrow/row"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

const (
	nullKeyMarker  = 0
	valueKeyMarker = 1
)

// EqualityDeleteFilter removes data rows whose equality channels match a row in a set of
// delete Pages. Only the equality channels of a data row are ever decoded. Nulls match nulls.
//
// IsDeleted, Filter and FilterPages may be called concurrently with each other. AddDeletes
// and AddDeleteRow block them while they run.
type EqualityDeleteFilter struct {
	conf          *FilterConf
	equalityTypes []lazyrow.ColumnType
	logger        zerolog.Logger
	lock          sync.RWMutex
	keys          map[uint64][][]byte
	numKeys       int
}

// CreateEqualityDeleteFilter creates an empty EqualityDeleteFilter. Returns an
// errors.InvalidArgumentError if conf is invalid.
func CreateEqualityDeleteFilter(conf *FilterConf) (*EqualityDeleteFilter, error) {
	conf, err := conf.withDefaults()
	if err != nil {
		return nil, err
	}
	return &EqualityDeleteFilter{
		conf:          conf,
		equalityTypes: conf.equalityTypes(),
		logger:        conf.Logger.With().Ints("equality_channels", conf.EqualityChannels).Logger(),
		keys:          make(map[uint64][][]byte),
	}, nil
}

// Len returns the number of distinct delete keys in this filter
func (f *EqualityDeleteFilter) Len() int {
	f.lock.RLock()
	defer f.lock.RUnlock()
	return f.numKeys
}

// AddDeletes adds every position of a delete Page to this filter. The channels of
// the delete Page must match the filter's equality channels, in order.
func (f *EqualityDeleteFilter) AddDeletes(deletes lazyrow.Page) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	before := f.numKeys
	for i := 0; i < deletes.PositionCount(); i++ {
		view, err := row.CreateLazyRow(f.equalityTypes, deletes, i)
		if err != nil {
			return err
		}
		if err := f.addKey(view); err != nil {
			return fmt.Errorf("delete position %d: %w", i, err)
		}
	}
	f.logger.Debug().Int("positions", deletes.PositionCount()).Int("new_keys", f.numKeys-before).Msg("added delete page")
	return nil
}

// AddDeleteRow adds a single delete key, read from a RowView whose fields are the
// filter's equality channels, in order
func (f *EqualityDeleteFilter) AddDeleteRow(view lazyrow.RowView) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.addKey(view)
}

func (f *EqualityDeleteFilter) addKey(view lazyrow.RowView) error {
	fields := make([]int, len(f.equalityTypes))
	for i := range fields {
		fields[i] = i
	}
	key, err := f.keyOf(view, fields)
	if err != nil {
		return err
	}
	hash := xxhash.Sum64(key)
	for _, existing := range f.keys[hash] {
		if bytes.Equal(existing, key) {
			return nil
		}
	}
	f.keys[hash] = append(f.keys[hash], key)
	f.numKeys++
	return nil
}

// keyOf encodes the given fields of view: a marker byte per field, followed for
// non-null fields by a uvarint length and the encoded value
func (f *EqualityDeleteFilter) keyOf(view lazyrow.RowView, fields []int) ([]byte, error) {
	key := make([]byte, 0, 16*len(fields))
	var scratch [binary.MaxVarintLen64]byte
	for k, field := range fields {
		v, err := view.Get(field)
		if err != nil {
			return nil, err
		}
		if v == nil {
			key = append(key, nullKeyMarker)
			continue
		}
		raw, err := codec.Encode(f.equalityTypes[k], v)
		if err != nil {
			return nil, err
		}
		key = append(key, valueKeyMarker)
		n := binary.PutUvarint(scratch[:], uint64(len(raw)))
		key = append(key, scratch[:n]...)
		key = append(key, raw...)
	}
	return key, nil
}

// IsDeleted returns true iff the equality channels of a data row match a delete key.
// Only the equality channels of view are read.
func (f *EqualityDeleteFilter) IsDeleted(view lazyrow.RowView) (bool, error) {
	key, err := f.keyOf(view, f.conf.EqualityChannels)
	if err != nil {
		return false, err
	}
	f.lock.RLock()
	defer f.lock.RUnlock()
	for _, existing := range f.keys[xxhash.Sum64(key)] {
		if bytes.Equal(existing, key) {
			return true, nil
		}
	}
	return false, nil
}

// Filter returns the positions of a data Page which are not deleted, in ascending order.
// A row which cannot be decoded aborts filtering, unless IgnoreRowErrors is set, in which
// case the row is retained and its error is included in the returned multierror.
func (f *EqualityDeleteFilter) Filter(data lazyrow.Page) ([]int, error) {
	var multierr *multierror.Error
	rowErrors := 0
	retained := make([]int, 0, data.PositionCount())
	for i := 0; i < data.PositionCount(); i++ {
		view, err := row.CreateLazyRowWithExtractor(f.conf.DataTypes, data, i, f.conf.Extractor)
		if err != nil {
			return nil, err
		}
		deleted, err := f.IsDeleted(view)
		if err != nil {
			if !f.conf.IgnoreRowErrors {
				return nil, fmt.Errorf("position %d: %w", i, err)
			}
			multierr = multierror.Append(multierr, fmt.Errorf("position %d: %w", i, err))
			rowErrors++
		}
		if !deleted {
			retained = append(retained, i)
		}
	}
	f.logger.Debug().
		Int("positions", data.PositionCount()).
		Int("deleted", data.PositionCount()-len(retained)).
		Int("row_errors", rowErrors).
		Msg("filtered page")
	return retained, multierr.ErrorOrNil()
}

package deletes

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/go-sif/lazyrow"
	"github.com/go-sif/lazyrow/codec"
	errors "github.com/go-sif/lazyrow/errors"
	"github.com/go-sif/lazyrow/page"
	"github.com/go-sif/lazyrow/row"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var dataTypes = []lazyrow.ColumnType{
	&lazyrow.Int64ColumnType{},     // id
	&lazyrow.VarStringColumnType{}, // name
	&lazyrow.Float64ColumnType{},   // score
	&lazyrow.VarStringColumnType{}, // region
}

func quietLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// dataPage holds ids 0..n-1, named "name-<id>", with region nil for every fifth row
func dataPage(t *testing.T, n int) *page.Columnar {
	builder := page.CreateBuilder(dataTypes, n)
	for i := 0; i < n; i++ {
		var region interface{} = "eu"
		if i%5 == 0 {
			region = nil
		}
		require.Nil(t, builder.AppendRow(int64(i), fmt.Sprintf("name-%d", i), float64(i)*1.5, region))
	}
	return builder.Build()
}

func deletePage(t *testing.T, types []lazyrow.ColumnType, rows ...[]interface{}) *page.Columnar {
	builder := page.CreateBuilder(types, 0)
	for _, r := range rows {
		require.Nil(t, builder.AppendRow(r...))
	}
	return builder.Build()
}

func TestFilterConfValidation(t *testing.T) {
	tests := []struct {
		name string
		conf *FilterConf
	}{
		{"nil conf", nil},
		{"no data types", &FilterConf{EqualityChannels: []int{0}}},
		{"no equality channels", &FilterConf{DataTypes: dataTypes}},
		{"negative channel", &FilterConf{DataTypes: dataTypes, EqualityChannels: []int{-1}}},
		{"channel out of range", &FilterConf{DataTypes: dataTypes, EqualityChannels: []int{4}}},
		{"duplicate channel", &FilterConf{DataTypes: dataTypes, EqualityChannels: []int{1, 1}}},
		{"negative parallelism", &FilterConf{DataTypes: dataTypes, EqualityChannels: []int{1}, Parallelism: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateEqualityDeleteFilter(tt.conf)
			require.IsType(t, errors.InvalidArgumentError{}, err)
		})
	}

	f, err := CreateEqualityDeleteFilter(&FilterConf{DataTypes: dataTypes, EqualityChannels: []int{0}, Logger: quietLogger()})
	require.Nil(t, err)
	require.Greater(t, f.conf.Parallelism, 0)
	require.NotNil(t, f.conf.Extractor)
}

func TestFilterByEqualityChannels(t *testing.T) {
	f, err := CreateEqualityDeleteFilter(&FilterConf{
		DataTypes:        dataTypes,
		EqualityChannels: []int{1, 3},
		Logger:           quietLogger(),
	})
	require.Nil(t, err)
	deleteTypes := []lazyrow.ColumnType{&lazyrow.VarStringColumnType{}, &lazyrow.VarStringColumnType{}}
	require.Nil(t, f.AddDeletes(deletePage(t, deleteTypes,
		[]interface{}{"name-1", "eu"},
		[]interface{}{"name-2", "us"}, // region doesn't match
		[]interface{}{"name-5", nil},  // nulls match nulls
		[]interface{}{"name-1", "eu"}, // duplicate
		[]interface{}{"name-99", "eu"},
	)))
	require.Equal(t, 4, f.Len())

	retained, err := f.Filter(dataPage(t, 8))
	require.Nil(t, err)
	require.Equal(t, []int{0, 2, 3, 4, 6, 7}, retained)
}

func TestFilterOnlyDecodesEqualityChannels(t *testing.T) {
	var lock sync.Mutex
	decoded := make(map[lazyrow.ColumnType]int)
	p := dataPage(t, 20)
	f, err := CreateEqualityDeleteFilter(&FilterConf{
		DataTypes:        dataTypes,
		EqualityChannels: []int{0},
		Logger:           quietLogger(),
		Extractor: func(block lazyrow.Block, position int, colType lazyrow.ColumnType) (interface{}, error) {
			lock.Lock()
			decoded[colType]++
			lock.Unlock()
			return codec.Decode(block, position, colType)
		},
	})
	require.Nil(t, err)
	require.Nil(t, f.AddDeletes(deletePage(t, []lazyrow.ColumnType{&lazyrow.Int64ColumnType{}}, []interface{}{int64(3)})))

	retained, err := f.Filter(p)
	require.Nil(t, err)
	require.Len(t, retained, 19)
	require.Equal(t, 20, decoded[dataTypes[0]])
	require.Equal(t, 0, decoded[dataTypes[1]])
	require.Equal(t, 0, decoded[dataTypes[2]])
	require.Equal(t, 0, decoded[dataTypes[3]])
}

func TestIsDeletedWorksWithAnyRowView(t *testing.T) {
	f, err := CreateEqualityDeleteFilter(&FilterConf{DataTypes: dataTypes, EqualityChannels: []int{0, 2}, Logger: quietLogger()})
	require.Nil(t, err)
	key := row.CreateRecord([]lazyrow.ColumnType{&lazyrow.Int64ColumnType{}, &lazyrow.Float64ColumnType{}})
	require.Nil(t, key.Set(0, int64(2)))
	require.Nil(t, key.Set(1, 3.0))
	require.Nil(t, f.AddDeleteRow(key))

	p := dataPage(t, 4)
	lazy, err := row.CreateLazyRow(dataTypes, p, 2)
	require.Nil(t, err)
	deleted, err := f.IsDeleted(lazy)
	require.Nil(t, err)
	require.True(t, deleted)

	eager, err := row.MaterializeRecord(dataTypes, p, 2)
	require.Nil(t, err)
	deleted, err = f.IsDeleted(eager)
	require.Nil(t, err)
	require.True(t, deleted)

	other, err := row.MaterializeRecord(dataTypes, p, 1)
	require.Nil(t, err)
	deleted, err = f.IsDeleted(other)
	require.Nil(t, err)
	require.False(t, deleted)
}

func TestAddDeletesRejectsMismatchedPage(t *testing.T) {
	f, err := CreateEqualityDeleteFilter(&FilterConf{DataTypes: dataTypes, EqualityChannels: []int{0}, Logger: quietLogger()})
	require.Nil(t, err)
	wide := deletePage(t, []lazyrow.ColumnType{&lazyrow.Int64ColumnType{}, &lazyrow.Int64ColumnType{}}, []interface{}{int64(1), int64(2)})
	require.IsType(t, errors.InvalidArgumentError{}, f.AddDeletes(wide))
	require.Equal(t, 0, f.Len())
}

func TestFilterRowErrors(t *testing.T) {
	failing := func(block lazyrow.Block, position int, colType lazyrow.ColumnType) (interface{}, error) {
		if position%2 == 1 {
			return nil, fmt.Errorf("corrupt value")
		}
		return codec.Decode(block, position, colType)
	}
	conf := &FilterConf{DataTypes: dataTypes, EqualityChannels: []int{0}, Extractor: failing, Logger: quietLogger()}
	deletes := deletePage(t, []lazyrow.ColumnType{&lazyrow.Int64ColumnType{}}, []interface{}{int64(0)}, []interface{}{int64(1)})

	strict, err := CreateEqualityDeleteFilter(conf)
	require.Nil(t, err)
	require.Nil(t, strict.AddDeletes(deletes))
	_, err = strict.Filter(dataPage(t, 4))
	require.NotNil(t, err)

	conf.IgnoreRowErrors = true
	lenient, err := CreateEqualityDeleteFilter(conf)
	require.Nil(t, err)
	require.Nil(t, lenient.AddDeletes(deletes))
	retained, err := lenient.Filter(dataPage(t, 4))
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	// position 0 is deleted; erroring positions are retained
	require.Equal(t, []int{1, 2, 3}, retained)
}

func TestFilterPages(t *testing.T) {
	f, err := CreateEqualityDeleteFilter(&FilterConf{DataTypes: dataTypes, EqualityChannels: []int{0}, Parallelism: 2, Logger: quietLogger()})
	require.Nil(t, err)
	require.Nil(t, f.AddDeletes(deletePage(t, []lazyrow.ColumnType{&lazyrow.Int64ColumnType{}},
		[]interface{}{int64(0)}, []interface{}{int64(9)})))

	pages := make([]lazyrow.Page, 6)
	for i := range pages {
		pages[i] = dataPage(t, 10)
	}
	results, err := f.FilterPages(context.Background(), pages)
	require.Nil(t, err)
	require.Len(t, results, len(pages))
	for _, retained := range results {
		require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, retained)
	}
}

func TestFilterPagesCancelled(t *testing.T) {
	f, err := CreateEqualityDeleteFilter(&FilterConf{DataTypes: dataTypes, EqualityChannels: []int{0}, Parallelism: 1, Logger: quietLogger()})
	require.Nil(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.FilterPages(ctx, []lazyrow.Page{dataPage(t, 2), dataPage(t, 2)})
	require.Equal(t, context.Canceled, err)
}

func TestFilterCache(t *testing.T) {
	cache, err := CreateFilterCache(2)
	require.Nil(t, err)
	var lock sync.Mutex
	loads := 0
	loader := func() (*EqualityDeleteFilter, error) {
		lock.Lock()
		loads++
		lock.Unlock()
		return CreateEqualityDeleteFilter(&FilterConf{DataTypes: dataTypes, EqualityChannels: []int{0}, Logger: quietLogger()})
	}

	var wg sync.WaitGroup
	filters := make([]*EqualityDeleteFilter, 8)
	for i := range filters {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			f, err := cache.Get("deletes-a", loader)
			if err == nil {
				filters[i] = f
			}
		}(i)
	}
	wg.Wait()
	require.Equal(t, 1, loads)
	for _, f := range filters {
		require.Same(t, filters[0], f)
	}

	_, err = cache.Get("deletes-b", loader)
	require.Nil(t, err)
	_, err = cache.Get("deletes-c", loader)
	require.Nil(t, err)
	require.Equal(t, 2, cache.Len())
	require.Equal(t, 3, loads)

	_, err = cache.Get("broken", func() (*EqualityDeleteFilter, error) {
		return nil, fmt.Errorf("missing delete file")
	})
	require.NotNil(t, err)
	require.Equal(t, 2, cache.Len())

	cache.Purge()
	require.Equal(t, 0, cache.Len())
}

package memory

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/burrowdb/internal/adapters/driven/storage/keycodec"
	"github.com/custodia-labs/burrowdb/internal/core/domain"
	"github.com/custodia-labs/burrowdb/internal/core/ports/driven"
)

// Ensure RelationalStore implements the interface.
var _ driven.RelationalEngine = (*RelationalStore)(nil)

// RelationalStoreOptions tunes index maintenance.
type RelationalStoreOptions struct {
	// RetractStale removes a row's previous column index entries when a
	// row with the same ID is inserted again.
	RetractStale bool
}

// table holds rows by ID and one index per column:
// column -> encoded value -> row IDs.
type table struct {
	name    string
	rows    map[string]*domain.Row
	indexes map[string]idIndex
}

func newTable(name string) *table {
	return &table{
		name:    name,
		rows:    make(map[string]*domain.Row),
		indexes: make(map[string]idIndex),
	}
}

func (t *table) column(name string) idIndex {
	ix, ok := t.indexes[name]
	if !ok {
		ix = make(idIndex)
		t.indexes[name] = ix
	}
	return ix
}

// RelationalStore is an in-memory table engine. Every column of every
// inserted row is indexed by its keycodec encoding.
//
// It holds no locks: the benchmark drives it from a single goroutine.
type RelationalStore struct {
	opts   RelationalStoreOptions
	tables map[string]*table
}

// NewRelationalStore creates a relational store that keeps stale index entries.
func NewRelationalStore() *RelationalStore {
	return NewRelationalStoreWithOptions(RelationalStoreOptions{})
}

// NewRelationalStoreWithOptions creates a relational store with opts.
func NewRelationalStoreWithOptions(opts RelationalStoreOptions) *RelationalStore {
	return &RelationalStore{
		opts:   opts,
		tables: make(map[string]*table),
	}
}

// CreateTable registers an empty table, silently replacing any table of
// the same name.
func (s *RelationalStore) CreateTable(name string) {
	s.tables[name] = newTable(name)
}

// Insert stores row in the named table and indexes all of its columns.
// Rows for unknown tables are dropped without error.
func (s *RelationalStore) Insert(tableName string, row *domain.Row) error {
	t, ok := s.tables[tableName]
	if !ok {
		return nil
	}

	// Encode everything first so a bad value leaves the table untouched.
	keys := make(map[string]string, len(row.Data))
	for col, val := range row.Data {
		key, err := keycodec.IndexKey(val)
		if err != nil {
			return fmt.Errorf("insert %s/%s column %s: %w", tableName, row.ID, col, err)
		}
		keys[col] = key
	}

	if prev, ok := t.rows[row.ID]; ok && s.opts.RetractStale {
		for col, val := range prev.Data {
			// prev was encoded successfully when it was inserted
			t.column(col).retract(keycodec.MustIndexKey(val), prev.ID)
		}
	}

	for col, key := range keys {
		t.column(col).add(key, row.ID)
	}
	t.rows[row.ID] = row.Clone()
	return nil
}

// Get retrieves a row by ID from the named table.
func (s *RelationalStore) Get(tableName, id string) (*domain.Row, bool) {
	t, ok := s.tables[tableName]
	if !ok {
		return nil, false
	}
	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	return row.Clone(), true
}

// FindByColumn returns the rows whose column was indexed under key.
// key must come from keycodec.IndexKey.
func (s *RelationalStore) FindByColumn(tableName, column, key string) []*domain.Row {
	t, ok := s.tables[tableName]
	if !ok {
		return nil
	}
	ix, ok := t.indexes[column]
	if !ok {
		return nil
	}
	ids := ix.lookup(key)
	if len(ids) == 0 {
		return nil
	}
	result := make([]*domain.Row, 0, len(ids))
	for _, id := range ids {
		if row, ok := t.rows[id]; ok {
			result = append(result, row.Clone())
		}
	}
	return result
}

// FindByValue encodes value and looks it up in column.
func (s *RelationalStore) FindByValue(tableName, column string, value domain.Value) ([]*domain.Row, error) {
	key, err := keycodec.IndexKey(value)
	if err != nil {
		return nil, err
	}
	return s.FindByColumn(tableName, column, key), nil
}

// Stats reports the number of tables and rows.
func (s *RelationalStore) Stats() domain.RelationalStoreStats {
	stats := domain.RelationalStoreStats{Tables: len(s.tables)}
	for _, t := range s.tables {
		stats.Rows += len(t.rows)
	}
	return stats
}

// TableNames returns the registered table names in sorted order.
func (s *RelationalStore) TableNames() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

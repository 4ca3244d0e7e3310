package driven

import "github.com/custodia-labs/burrowdb/internal/core/domain"

// DocumentEngine stores documents and maintains secondary indexes by
// tag and by link target. Implementations are single-threaded.
type DocumentEngine interface {
	// Store inserts or replaces a document by ID (last write wins) and
	// appends its ID to the tag and link-target index entries.
	Store(doc *domain.Document)

	// Get returns the document stored under id.
	Get(id string) (*domain.Document, bool)

	// FindByTag returns the documents indexed under tag, in append order.
	FindByTag(tag string) []*domain.Document

	// FindLinkedTo returns the documents that declare a link to target.
	FindLinkedTo(target string) []*domain.Document

	// Stats reports record and index key counts.
	Stats() domain.DocumentStoreStats
}

// RelationalEngine stores named tables of rows with an index on every
// column, keyed by the canonical encoding of each value.
type RelationalEngine interface {
	// CreateTable registers an empty table, replacing any existing one.
	CreateTable(name string)

	// Insert adds row to table. A missing table drops the row silently.
	// An error is returned only when a value cannot be index-encoded.
	Insert(table string, row *domain.Row) error

	// Get returns a row by ID. Absent when the row or table is missing.
	Get(table, id string) (*domain.Row, bool)

	// FindByColumn returns rows whose column matches the pre-encoded key.
	FindByColumn(table, column, key string) []*domain.Row

	// FindByValue encodes value and delegates to FindByColumn.
	FindByValue(table, column string, value domain.Value) ([]*domain.Row, error)

	// Stats reports table and row counts.
	Stats() domain.RelationalStoreStats
}

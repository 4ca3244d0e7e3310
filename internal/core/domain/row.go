package domain

// Row is a relational record: an ID unique within its table plus
// column-keyed values.
type Row struct {
	// ID is unique within the owning table.
	ID string

	// Data maps column name to value.
	Data map[string]Value
}

// NewRow creates a row with a copy of data.
func NewRow(id string, data map[string]Value) *Row {
	r := &Row{ID: id, Data: make(map[string]Value, len(data))}
	for k, v := range data {
		r.Data[k] = v
	}
	return r
}

// Column returns the value stored under column.
func (r *Row) Column(column string) (Value, bool) {
	v, ok := r.Data[column]
	return v, ok
}

// Clone returns a copy that shares no mutable state with r.
func (r *Row) Clone() *Row {
	return NewRow(r.ID, r.Data)
}

// RelationalStoreStats summarises the size of a relational engine.
type RelationalStoreStats struct {
	// Tables is the number of registered tables.
	Tables int

	// Rows is the total row count across tables.
	Rows int
}

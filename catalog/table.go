package catalog

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// Column is a resolved handle to a single table column.
// The zero value is not valid; obtain handles from a Table.
type Column struct {
	name string
	typ  arrow.DataType
}

// Name returns the column name.
func (c Column) Name() string { return c.name }

// Type returns the Arrow data type of the column.
func (c Column) Type() arrow.DataType { return c.typ }

// String implements fmt.Stringer.
func (c Column) String() string { return c.name }

// Table describes a queryable table with a fixed schema.
// Immutable after construction; safe for concurrent use by multiple
// goroutines.
type Table struct {
	name    string
	schema  *arrow.Schema
	columns map[string]Column
	order   []string
}

// NewTable creates a table handle from an Arrow schema.
// Returns an error if name is empty, schema is nil, or the schema contains
// duplicate column names.
func NewTable(name string, schema *arrow.Schema) (*Table, error) {
	if name == "" {
		return nil, fmt.Errorf("table name cannot be empty")
	}
	if schema == nil {
		return nil, fmt.Errorf("table %s has nil schema", name)
	}

	columns := make(map[string]Column, schema.NumFields())
	order := make([]string, 0, schema.NumFields())
	for i := 0; i < schema.NumFields(); i++ {
		field := schema.Field(i)
		if _, ok := columns[field.Name]; ok {
			return nil, fmt.Errorf("duplicate column name %s in table %s", field.Name, name)
		}
		columns[field.Name] = Column{name: field.Name, typ: field.Type}
		order = append(order, field.Name)
	}

	return &Table{
		name:    name,
		schema:  schema,
		columns: columns,
		order:   order,
	}, nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// ArrowSchema returns the schema describing the table columns.
func (t *Table) ArrowSchema() *arrow.Schema { return t.schema }

// Column returns the handle for a named column.
// The second return value reports whether the column exists.
func (t *Table) Column(name string) (Column, bool) {
	col, ok := t.columns[name]
	return col, ok
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Columns returns all column handles in schema order.
func (t *Table) Columns() []Column {
	result := make([]Column, 0, len(t.order))
	for _, name := range t.order {
		result = append(result, t.columns[name])
	}
	return result
}

// ColumnNames returns all column names in schema order.
func (t *Table) ColumnNames() []string {
	return append([]string(nil), t.order...)
}

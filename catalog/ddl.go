package catalog

import (
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
)

// DuckDBTypeName converts an Arrow data type to the corresponding DuckDB
// column type name. Unknown types map to VARCHAR.
func DuckDBTypeName(dt arrow.DataType) string {
	if ext, ok := dt.(arrow.ExtensionType); ok {
		if ext.ExtensionName() == GeometryExtensionName {
			return "GEOMETRY"
		}
		return DuckDBTypeName(ext.StorageType())
	}

	switch dt := dt.(type) {
	case *arrow.BooleanType:
		return "BOOLEAN"
	case *arrow.Int8Type:
		return "TINYINT"
	case *arrow.Int16Type:
		return "SMALLINT"
	case *arrow.Int32Type:
		return "INTEGER"
	case *arrow.Int64Type:
		return "BIGINT"
	case *arrow.Uint8Type:
		return "UTINYINT"
	case *arrow.Uint16Type:
		return "USMALLINT"
	case *arrow.Uint32Type:
		return "UINTEGER"
	case *arrow.Uint64Type:
		return "UBIGINT"
	case *arrow.Float32Type:
		return "FLOAT"
	case *arrow.Float64Type:
		return "DOUBLE"
	case *arrow.StringType, *arrow.LargeStringType:
		return "VARCHAR"
	case *arrow.BinaryType, *arrow.LargeBinaryType:
		return "BLOB"
	case *arrow.Date32Type, *arrow.Date64Type:
		return "DATE"
	case *arrow.Time32Type, *arrow.Time64Type:
		return "TIME"
	case *arrow.TimestampType:
		if dt.TimeZone != "" {
			return "TIMESTAMP WITH TIME ZONE"
		}
		return "TIMESTAMP"
	case *arrow.Decimal128Type:
		return "DECIMAL(" + strconv.Itoa(int(dt.Precision)) + "," + strconv.Itoa(int(dt.Scale)) + ")"
	default:
		return "VARCHAR"
	}
}

// CreateSQL returns a CREATE TABLE statement for the table in DuckDB syntax.
// Used by test harnesses and examples to stand up fixtures for queries built
// against this table handle.
func (t *Table) CreateSQL() string {
	var sb strings.Builder
	sb.WriteString("CREATE TABLE ")
	sb.WriteString(QuoteIdentifier(t.name))
	sb.WriteString(" (")
	for i, name := range t.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(QuoteIdentifier(name))
		sb.WriteString(" ")
		sb.WriteString(DuckDBTypeName(t.columns[name].Type()))
	}
	sb.WriteString(")")
	return sb.String()
}

// InsertSQL returns a parameterized INSERT statement covering every column
// of the table, with one placeholder per column.
func (t *Table) InsertSQL() string {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(QuoteIdentifier(t.name))
	sb.WriteString(" (")
	for i, name := range t.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(QuoteIdentifier(name))
	}
	sb.WriteString(") VALUES (")
	for i := range t.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("?")
	}
	sb.WriteString(")")
	return sb.String()
}

// BindArgs converts a row of Go values into driver-bindable arguments.
// Geometry values are encoded as WKB; all other values pass through.
func BindArgs(values []any) ([]any, error) {
	args := make([]any, len(values))
	for i, v := range values {
		if geom, ok := v.(orb.Geometry); ok {
			data, err := wkb.Marshal(geom)
			if err != nil {
				return nil, err
			}
			args[i] = data
			continue
		}
		args[i] = v
	}
	return args, nil
}

// QuoteIdentifier wraps name in double quotes (DuckDB's identifier
// quoting) when it cannot appear bare in SQL text.
func QuoteIdentifier(name string) string {
	if needsQuoting(name) {
		return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	}
	return name
}

// needsQuoting reports whether name requires quoting: empty,
// non-identifier characters, or a reserved word.
func needsQuoting(name string) bool {
	if len(name) == 0 {
		return true
	}

	// First character must be a letter or underscore.
	c := name[0]
	if !isLetter(c) && c != '_' {
		return true
	}

	// Remaining characters must be letters, digits, or underscores.
	for i := 1; i < len(name); i++ {
		c = name[i]
		if !isLetter(c) && !isDigit(c) && c != '_' {
			return true
		}
	}

	// Reserved words always get quoted. The list covers the common SQL
	// keywords, not the full DuckDB grammar.
	upper := strings.ToUpper(name)
	switch upper {
	case "SELECT", "FROM", "WHERE", "AND", "OR", "NOT", "NULL", "TRUE", "FALSE",
		"INSERT", "UPDATE", "DELETE", "CREATE", "DROP", "ALTER", "TABLE", "INDEX",
		"JOIN", "LEFT", "RIGHT", "INNER", "OUTER", "ON", "AS", "IN", "IS", "LIKE",
		"BETWEEN", "EXISTS", "CASE", "WHEN", "THEN", "ELSE", "END", "ORDER", "BY",
		"GROUP", "HAVING", "LIMIT", "OFFSET", "UNION", "EXCEPT", "INTERSECT",
		"ALL", "DISTINCT", "VALUES", "SET", "INTO", "PRIMARY", "KEY", "FOREIGN",
		"REFERENCES", "CONSTRAINT", "DEFAULT", "CHECK", "UNIQUE", "ASC", "DESC",
		"NULLS", "FIRST", "LAST", "CAST", "INTERVAL", "DATE", "TIME", "TIMESTAMP":
		return true
	}

	return false
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

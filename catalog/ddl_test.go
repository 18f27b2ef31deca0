package catalog

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
)

// TestDuckDBTypeName tests the Arrow to DuckDB type mapping.
func TestDuckDBTypeName(t *testing.T) {
	tests := []struct {
		arrowType arrow.DataType
		want      string
	}{
		{arrow.FixedWidthTypes.Boolean, "BOOLEAN"},
		{arrow.PrimitiveTypes.Int8, "TINYINT"},
		{arrow.PrimitiveTypes.Int16, "SMALLINT"},
		{arrow.PrimitiveTypes.Int32, "INTEGER"},
		{arrow.PrimitiveTypes.Int64, "BIGINT"},
		{arrow.PrimitiveTypes.Uint8, "UTINYINT"},
		{arrow.PrimitiveTypes.Uint64, "UBIGINT"},
		{arrow.PrimitiveTypes.Float32, "FLOAT"},
		{arrow.PrimitiveTypes.Float64, "DOUBLE"},
		{arrow.BinaryTypes.String, "VARCHAR"},
		{arrow.BinaryTypes.Binary, "BLOB"},
		{arrow.FixedWidthTypes.Date32, "DATE"},
		{&arrow.TimestampType{Unit: arrow.Microsecond}, "TIMESTAMP"},
		{&arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "UTC"}, "TIMESTAMP WITH TIME ZONE"},
		{&arrow.Decimal128Type{Precision: 12, Scale: 3}, "DECIMAL(12,3)"},
		{NewGeometryExtensionType(), "GEOMETRY"},
	}

	for _, tt := range tests {
		if got := DuckDBTypeName(tt.arrowType); got != tt.want {
			t.Errorf("DuckDBTypeName(%s) = %s, expected %s", tt.arrowType, got, tt.want)
		}
	}
}

// TestCreateSQL tests CREATE TABLE generation.
func TestCreateSQL(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.BinaryTypes.String},
		{Name: "order", Type: arrow.PrimitiveTypes.Int32},
	}, nil)

	table, err := NewTable("line items", schema)
	if err != nil {
		t.Fatalf("Expected successful table creation, got error: %v", err)
	}

	want := `CREATE TABLE "line items" (id BIGINT, name VARCHAR, "order" INTEGER)`
	if got := table.CreateSQL(); got != want {
		t.Errorf("Unexpected CREATE TABLE SQL.\nExpected: %s\nGot:      %s", want, got)
	}
}

// TestInsertSQL tests parameterized INSERT generation.
func TestInsertSQL(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "name", Type: arrow.BinaryTypes.String},
	}, nil)

	table, err := NewTable("users", schema)
	if err != nil {
		t.Fatalf("Expected successful table creation, got error: %v", err)
	}

	want := "INSERT INTO users (id, name) VALUES (?, ?)"
	if got := table.InsertSQL(); got != want {
		t.Errorf("Unexpected INSERT SQL.\nExpected: %s\nGot:      %s", want, got)
	}
}

// TestBindArgs tests WKB encoding of geometry arguments.
func TestBindArgs(t *testing.T) {
	point := orb.Point{1, 2}
	args, err := BindArgs([]any{int64(1), "x", point})
	if err != nil {
		t.Fatalf("Expected successful binding, got error: %v", err)
	}

	if args[0] != int64(1) || args[1] != "x" {
		t.Errorf("Expected scalar values to pass through, got %v", args[:2])
	}

	wantWKB, err := wkb.Marshal(point)
	if err != nil {
		t.Fatalf("Failed to marshal reference WKB: %v", err)
	}
	got, ok := args[2].([]byte)
	if !ok {
		t.Fatalf("Expected []byte for geometry argument, got %T", args[2])
	}
	if string(got) != string(wantWKB) {
		t.Error("Expected WKB-encoded geometry argument")
	}
}

// TestQuoteIdentifier tests identifier quoting rules.
func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"simple", "simple"},
		{"_underscore", "_underscore"},
		{"with space", `"with space"`},
		{"1starts_with_digit", `"1starts_with_digit"`},
		{"order", `"order"`},
		{`quo"te`, `"quo""te"`},
		{"", `""`},
	}

	for _, tt := range tests {
		if got := QuoteIdentifier(tt.name); got != tt.want {
			t.Errorf("QuoteIdentifier(%q) = %s, expected %s", tt.name, got, tt.want)
		}
	}
}

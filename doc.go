// Package rowgroup computes row-grouping information over relational tables
// without collapsing rows: every output row keeps its full column data plus
// an attached group descriptor (group id, group size, first/last
// grouping-column values).
//
// Two strategies are supported. Distinct grouping assigns the same group id
// to rows with equal grouping-column tuples, using dense_rank so ids are
// contiguous ascending integers. Percentile grouping partitions rows into N
// equal-probability-mass buckets by their cume_dist rank under the grouping
// order.
//
// All grouping computation is pushed into a single SQL query built by
// BuildQuery; nothing is grouped in application memory. The query attaches
// a json_object of group metadata to every row under GroupMetadataKey.
// After execution, ExtractGroupMetadata separates row data from group
// metadata and deduplicates the descriptors into a compact group table.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "database/sql"
//	    "log"
//
//	    "github.com/apache/arrow-go/v18/arrow"
//	    _ "github.com/duckdb/duckdb-go/v2"
//
//	    "github.com/hugr-lab/rowgroup-go"
//	    "github.com/hugr-lab/rowgroup-go/catalog"
//	)
//
//	func main() {
//	    db, _ := sql.Open("duckdb", "")
//	    defer db.Close()
//
//	    schema := arrow.NewSchema([]arrow.Field{
//	        {Name: "city", Type: arrow.BinaryTypes.String},
//	        {Name: "price", Type: arrow.PrimitiveTypes.Float64},
//	    }, nil)
//	    table, _ := catalog.NewTable("listings", schema)
//	    db.Exec(table.CreateSQL())
//
//	    svc, err := rowgroup.New(rowgroup.ServiceConfig{DB: db})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    records, groups, err := svc.GroupedRecords(context.Background(), table, rowgroup.GroupSpec{
//	        Columns: []string{"city"},
//	        Mode:    rowgroup.ModeDistinct,
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = records // rows in result order, metadata carries group_id
//	    _ = groups  // deduplicated group table, ascending by group id
//	}
//
// Query construction is pure and synchronous; execution is delegated to the
// engine behind the *sql.DB handle (DuckDB via duckdb-go). Callers that only
// need the SQL can use BuildQuery directly and run the extractor over rows
// they materialize themselves.
package rowgroup

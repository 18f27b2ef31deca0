package rowgroup

import (
	"github.com/hugr-lab/rowgroup-go/catalog"
)

// buildDistinctQuery constructs the exact-tuple grouping query: a single
// select over the table with the group metadata object attached. Group
// identity is dense_rank() over the grouping order, so equal tuples share
// an id and ids are contiguous ascending integers starting at 1.
func buildDistinctQuery(table *catalog.Table, columns []catalog.Column) *Query {
	plan := windowPlan{
		partitionBy: identifierExprs(columns),
		orderBy:     columns,
	}
	groupID := "dense_rank() OVER (ORDER BY " + plan.orderSQL() + ")"

	items := columnItems(table.ColumnNames())
	items = append(items, groupMetadataItem(plan, columns, groupID))

	return &Query{stages: []stage{{from: table.Name(), items: items}}}
}

// identifierExprs renders column handles as quoted identifiers.
func identifierExprs(columns []catalog.Column) []string {
	exprs := make([]string, len(columns))
	for i, col := range columns {
		exprs[i] = catalog.QuoteIdentifier(col.Name())
	}
	return exprs
}

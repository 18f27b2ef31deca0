package rowgroup

import (
	"fmt"
	"strings"

	"github.com/hugr-lab/rowgroup-go/catalog"
)

// selectItem is a single projected expression, optionally aliased.
type selectItem struct {
	expr  string
	alias string
}

// stage is one SELECT node of a query plan: a named intermediate result
// set (CTE) or, with an empty name, the final select.
type stage struct {
	name  string // CTE name; empty for the final stage
	from  string // base table or preceding stage name
	items []selectItem
}

// Query is an executable grouping query plan. Stages are ordered so each
// one reads only from the stage (or base table) before it; the data-flow
// dependency between percentile stages is structural, not re-derived from
// generated text. Build queries with BuildQuery; a Query holds no state
// beyond its plan and is safe to share.
type Query struct {
	stages []stage
}

// SQL renders the query as a DuckDB SQL statement. Named stages become a
// WITH clause in plan order.
func (q *Query) SQL() string {
	var sb strings.Builder

	ctes := q.stages[:len(q.stages)-1]
	if len(ctes) > 0 {
		sb.WriteString("WITH ")
		for i, s := range ctes {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(catalog.QuoteIdentifier(s.name))
			sb.WriteString(" AS (")
			writeSelect(&sb, s)
			sb.WriteString(")")
		}
		sb.WriteString(" ")
	}

	writeSelect(&sb, q.stages[len(q.stages)-1])
	return sb.String()
}

// String implements fmt.Stringer.
func (q *Query) String() string {
	return q.SQL()
}

func writeSelect(sb *strings.Builder, s stage) {
	sb.WriteString("SELECT ")
	for i, item := range s.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.expr)
		if item.alias != "" {
			sb.WriteString(" AS ")
			sb.WriteString(catalog.QuoteIdentifier(item.alias))
		}
	}
	sb.WriteString(" FROM ")
	sb.WriteString(catalog.QuoteIdentifier(s.from))
}

// columnItems projects the named columns unchanged.
func columnItems(names []string) []selectItem {
	items := make([]selectItem, len(names))
	for i, name := range names {
		items[i] = selectItem{expr: catalog.QuoteIdentifier(name)}
	}
	return items
}

// BuildQuery resolves the grouping request against the table and constructs
// the grouped-records query: every table column plus the group metadata
// object attached under GroupMetadataKey. The query is executed externally;
// construction itself is pure.
func BuildQuery(table *catalog.Table, spec GroupSpec) (*Query, error) {
	columns, mode, err := spec.resolve(table)
	if err != nil {
		return nil, err
	}
	if table.HasColumn(GroupMetadataKey) {
		return nil, fmt.Errorf("%w: table %s has column %s", ErrReservedColumn, table.Name(), GroupMetadataKey)
	}

	if mode.percentile {
		return buildPercentileQuery(table, columns, mode.numGroups)
	}
	return buildDistinctQuery(table, columns), nil
}

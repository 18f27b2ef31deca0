package rowgroup

import (
	"fmt"
	"strings"

	"github.com/hugr-lab/rowgroup-go/catalog"
)

// Working column names of the percentile plan's intermediate stages.
// They never appear in the final projection.
const (
	cumeDistColumn = "cume_dist"
	rangeIDColumn  = "range_id"
)

// buildPercentileQuery constructs the percentile-bucket grouping query as a
// three-node plan:
//
//	stage 1: table columns + cume_dist() over the grouping order
//	stage 2: stage 1 columns without cume_dist + 1-indexed range_id from a
//	         sequential CASE over (i/N, (i+1)/N] intervals
//	final:   stage 2 columns present in the table + group metadata, with
//	         range_id as both partition key and group id
//
// Bucket intervals are lower-exclusive and upper-inclusive, so a row
// exactly on an interior boundary lands in the lower-numbered bucket, and
// the last interval closes at exactly 1. More buckets than distinct
// cume_dist values leaves some buckets empty; that is accepted.
func buildPercentileQuery(table *catalog.Table, columns []catalog.Column, numGroups int) (*Query, error) {
	for _, name := range []string{cumeDistColumn, rangeIDColumn} {
		if table.HasColumn(name) {
			return nil, fmt.Errorf("%w: table %s has column %s", ErrReservedColumn, table.Name(), name)
		}
	}

	tableColumns := table.ColumnNames()
	order := windowPlan{orderBy: columns}

	cumeDistStage := stage{
		name: "cume_dist_cte",
		from: table.Name(),
		items: append(columnItems(tableColumns), selectItem{
			expr:  "cume_dist() OVER (ORDER BY " + order.orderSQL() + ")",
			alias: cumeDistColumn,
		}),
	}

	rangesStage := stage{
		name: "ranges_cte",
		from: cumeDistStage.name,
		items: append(columnItems(tableColumns), selectItem{
			expr:  rangeCaseExpr(numGroups),
			alias: rangeIDColumn,
		}),
	}

	plan := windowPlan{
		partitionBy: []string{catalog.QuoteIdentifier(rangeIDColumn)},
		orderBy:     columns,
	}

	// The bucket number already is the group id; no ranking needed.
	groupID := catalog.QuoteIdentifier(rangeIDColumn)

	final := stage{
		from:  rangesStage.name,
		items: append(columnItems(tableColumns), groupMetadataItem(plan, columns, groupID)),
	}

	return &Query{stages: []stage{cumeDistStage, rangesStage, final}}, nil
}

// rangeCaseExpr buckets the cume_dist column into numGroups half-open
// intervals, labeled 1..numGroups. cume_dist is always in (0, 1], so the
// case analysis is exhaustive.
func rangeCaseExpr(numGroups int) string {
	cd := catalog.QuoteIdentifier(cumeDistColumn)

	var sb strings.Builder
	sb.WriteString("CASE")
	for i := 0; i < numGroups; i++ {
		fmt.Fprintf(&sb, " WHEN %s > %d.0 / %d AND %s <= %d.0 / %d THEN %d",
			cd, i, numGroups, cd, i+1, numGroups, i+1)
	}
	sb.WriteString(" END")
	return sb.String()
}

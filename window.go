package rowgroup

import (
	"strings"

	"github.com/hugr-lab/rowgroup-go/catalog"
)

// wholePartitionFrame pins first_value/last_value windows to the full
// partition instead of the default frame that stops at the current row.
const wholePartitionFrame = "RANGE BETWEEN UNBOUNDED PRECEDING AND UNBOUNDED FOLLOWING"

// windowPlan pairs the partition key with the ordering key used to
// parameterize the window function calls of a grouping query. The frame
// always spans the whole partition, never a sliding window. Plans are
// ephemeral: rebuilt on every query construction, no independent lifecycle.
type windowPlan struct {
	partitionBy []string         // rendered partition expressions
	orderBy     []catalog.Column // resolved ordering columns
}

// partitionSQL renders the PARTITION BY expression list.
func (w windowPlan) partitionSQL() string {
	return strings.Join(w.partitionBy, ", ")
}

// orderSQL renders the ORDER BY expression list.
func (w windowPlan) orderSQL() string {
	names := make([]string, len(w.orderBy))
	for i, col := range w.orderBy {
		names[i] = catalog.QuoteIdentifier(col.Name())
	}
	return strings.Join(names, ", ")
}

// framedOver renders an OVER clause with partition, order, and the whole
// partition frame. Used for first_value/last_value, where the default
// frame would end at the current row.
func (w windowPlan) framedOver() string {
	var sb strings.Builder
	sb.WriteString("OVER (PARTITION BY ")
	sb.WriteString(w.partitionSQL())
	sb.WriteString(" ORDER BY ")
	sb.WriteString(w.orderSQL())
	sb.WriteString(" ")
	sb.WriteString(wholePartitionFrame)
	sb.WriteString(")")
	return sb.String()
}

// partitionOver renders an OVER clause with only the partition key.
// Without ORDER BY the window already covers the whole partition.
func (w windowPlan) partitionOver() string {
	return "OVER (PARTITION BY " + w.partitionSQL() + ")"
}

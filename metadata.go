package rowgroup

import (
	"strings"

	"github.com/hugr-lab/rowgroup-go/catalog"
)

// GroupMetadataKey is the reserved field name under which the group
// metadata object is attached to every row of a grouping query. The
// encoder and the extractor share this single compiled-in constant;
// BuildQuery rejects tables that already use the name.
const GroupMetadataKey = "__group_metadata"

// Field names of the group metadata object.
const (
	metadataGroupID    = "group_id"
	metadataCount      = "count"
	metadataFirstValue = "first_value"
	metadataLastValue  = "last_value"
)

// groupMetadataItem renders the metadata object attached to every row:
// a json_object carrying the group id, the partition row count, and the
// grouping-column values of the first and last row of the partition under
// the plan's order.
func groupMetadataItem(plan windowPlan, groupingColumns []catalog.Column, groupIDExpr string) selectItem {
	inner := innerGroupingObject(groupingColumns)

	var sb strings.Builder
	sb.WriteString("json_object(")
	sb.WriteString(quoteLiteral(metadataGroupID))
	sb.WriteString(", ")
	sb.WriteString(groupIDExpr)
	sb.WriteString(", ")
	sb.WriteString(quoteLiteral(metadataCount))
	sb.WriteString(", count(*) ")
	sb.WriteString(plan.partitionOver())
	sb.WriteString(", ")
	sb.WriteString(quoteLiteral(metadataFirstValue))
	sb.WriteString(", first_value(")
	sb.WriteString(inner)
	sb.WriteString(") ")
	sb.WriteString(plan.framedOver())
	sb.WriteString(", ")
	sb.WriteString(quoteLiteral(metadataLastValue))
	sb.WriteString(", last_value(")
	sb.WriteString(inner)
	sb.WriteString(") ")
	sb.WriteString(plan.framedOver())
	sb.WriteString(")")

	return selectItem{expr: sb.String(), alias: GroupMetadataKey}
}

// innerGroupingObject renders a json_object mapping each grouping column
// name to that column's value in the representative row.
func innerGroupingObject(columns []catalog.Column) string {
	var sb strings.Builder
	sb.WriteString("json_object(")
	for i, col := range columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(quoteLiteral(col.Name()))
		sb.WriteString(", ")
		sb.WriteString(catalog.QuoteIdentifier(col.Name()))
	}
	sb.WriteString(")")
	return sb.String()
}

// quoteLiteral renders a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

package rowgroup

import (
	"encoding/json"
	"sort"

	"github.com/hugr-lab/rowgroup-go/internal/canonical"
)

// Default section key names for extraction.
const (
	DefaultDataKey     = "data"
	DefaultMetadataKey = "metadata"
)

// Record is a single materialized result row: named sections (data,
// metadata) mapping to key/value structures. The data section holds column
// values, including the reserved GroupMetadataKey field before extraction.
type Record map[string]map[string]any

// ExtractOptions configures the section key names used during extraction.
// A nil *ExtractOptions uses DefaultDataKey and DefaultMetadataKey.
type ExtractOptions struct {
	// DataKey is the record section holding column values.
	// OPTIONAL: DefaultDataKey if empty.
	DataKey string

	// MetadataKey is the record section holding row metadata.
	// OPTIONAL: DefaultMetadataKey if empty.
	MetadataKey string
}

// Group is one deduplicated group descriptor observed across result rows.
type Group struct {
	// ID is the group identifier rows reference after extraction.
	ID int64 `json:"group_id" msgpack:"group_id"`

	// Count is the number of rows sharing this group id.
	Count int64 `json:"count" msgpack:"count"`

	// First maps grouping column names to their values in the first row of
	// the group under the grouping order.
	First map[string]any `json:"first_value" msgpack:"first_value"`

	// Last maps grouping column names to their values in the last row of
	// the group under the grouping order.
	Last map[string]any `json:"last_value" msgpack:"last_value"`
}

// ExtractGroupMetadata separates per-row data from per-group metadata over
// an already-materialized row sequence. For every record it strips the
// reserved GroupMetadataKey field from the data section and rewrites the
// metadata section to reference the group by id only; non-group metadata
// keys are preserved. The group metadata objects themselves are
// deduplicated by content equality (key order insensitive, nested objects
// compared by value) and returned ascending by group id.
//
// Rows without group metadata pass through with their metadata section
// unchanged and contribute no group entry, so running the extractor on its
// own output is a no-op with an empty group table. Input order is
// preserved; the extractor holds no state across calls.
func ExtractGroupMetadata(records []Record, opts *ExtractOptions) ([]Record, []Group, error) {
	dataKey, metadataKey := DefaultDataKey, DefaultMetadataKey
	if opts != nil {
		if opts.DataKey != "" {
			dataKey = opts.DataKey
		}
		if opts.MetadataKey != "" {
			metadataKey = opts.MetadataKey
		}
	}

	type groupEntry struct {
		fingerprint string
		group       Group
	}

	out := make([]Record, 0, len(records))
	seen := make(map[string]bool)
	var entries []groupEntry

	for _, rec := range records {
		data := rec[dataKey]
		clean := make(map[string]any, len(data))
		for k, v := range data {
			if k == GroupMetadataKey {
				continue
			}
			clean[k] = v
		}

		metadata := make(map[string]any, len(rec[metadataKey])+1)
		for k, v := range rec[metadataKey] {
			metadata[k] = v
		}

		raw, _ := data[GroupMetadataKey].(map[string]any)
		if len(raw) > 0 {
			metadata[metadataGroupID] = raw[metadataGroupID]

			fp, err := canonical.Fingerprint(raw)
			if err != nil {
				return nil, nil, err
			}
			if !seen[string(fp)] {
				seen[string(fp)] = true
				entries = append(entries, groupEntry{fingerprint: string(fp), group: groupFromMetadata(raw)})
			}
		}

		out = append(out, Record{dataKey: clean, metadataKey: metadata})
	}

	// Fingerprint as tie-break keeps the order deterministic even for
	// malformed inputs with duplicate ids.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].group.ID != entries[j].group.ID {
			return entries[i].group.ID < entries[j].group.ID
		}
		return entries[i].fingerprint < entries[j].fingerprint
	})

	groups := make([]Group, len(entries))
	for i, entry := range entries {
		groups[i] = entry.group
	}
	return out, groups, nil
}

// groupFromMetadata converts a raw group metadata object into a Group.
func groupFromMetadata(raw map[string]any) Group {
	g := Group{
		ID:    intFrom(raw[metadataGroupID]),
		Count: intFrom(raw[metadataCount]),
	}
	if m, ok := raw[metadataFirstValue].(map[string]any); ok {
		g.First = m
	}
	if m, ok := raw[metadataLastValue].(map[string]any); ok {
		g.Last = m
	}
	return g
}

// intFrom normalizes the numeric representations produced by JSON decoding
// and SQL drivers to int64.
func intFrom(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

package rowgroup

import (
	"fmt"
	"reflect"

	"github.com/hugr-lab/rowgroup-go/catalog"
)

// Grouping modes accepted by GroupSpec.Mode.
const (
	// ModeDistinct groups rows by exact equality of the grouping-column tuple.
	ModeDistinct = "distinct"

	// ModePercentile partitions rows into NumGroups equal-probability-mass
	// buckets based on their rank under the grouping order.
	ModePercentile = "percentile"
)

// DefaultNumGroups is the bucket count used in percentile mode when
// GroupSpec.NumGroups is nil.
const DefaultNumGroups = 12

// GroupSpec describes a row-grouping request.
//
// GroupSpec models the wire shape of a grouping request, so its fields are
// loosely typed and checked by Validate rather than by construction. A spec
// is immutable by convention: it is passed by value and never modified by
// the builders.
type GroupSpec struct {
	// Columns is the ordered sequence of grouping column references.
	// REQUIRED: MUST be a non-empty slice or array whose elements are
	// column name strings or catalog.Column handles. Order matters in
	// percentile mode, where it composes the sort key.
	Columns any `msgpack:"columns" json:"columns"`

	// Mode selects the grouping strategy.
	// REQUIRED: MUST be ModeDistinct or ModePercentile.
	Mode string `msgpack:"mode" json:"mode"`

	// NumGroups is the bucket count for percentile mode.
	// OPTIONAL: nil means DefaultNumGroups. When set it MUST be a true
	// positive integer; float values fail validation even when numerically
	// whole. Ignored in distinct mode.
	NumGroups any `msgpack:"num_groups,omitempty" json:"num_groups,omitempty"`
}

// groupMode is the closed, validated form of a grouping request mode.
// Query dispatch switches on it, so no "unknown mode" branch survives past
// validation.
type groupMode struct {
	percentile bool
	numGroups  int
}

// Validate checks the structural shape of the spec: the column list kind,
// the element kinds, the mode value, and the bucket count type. Validation
// is side-effect free and idempotent; it is re-run on every resolution,
// never cached.
func (s GroupSpec) Validate() error {
	_, err := s.mode()
	return err
}

// mode validates the spec and returns its closed mode form.
func (s GroupSpec) mode() (groupMode, error) {
	v := reflect.ValueOf(s.Columns)
	if s.Columns == nil || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return groupMode{}, fmt.Errorf("%w: column list must be a slice or array, got %T", ErrBadGroupFormat, s.Columns)
	}
	if v.Len() == 0 {
		return groupMode{}, fmt.Errorf("%w: column list must not be empty", ErrBadGroupFormat)
	}

	switch s.Mode {
	case ModeDistinct, ModePercentile:
	default:
		return groupMode{}, fmt.Errorf("%w: group mode %q", ErrInvalidGroupType, s.Mode)
	}

	var m groupMode
	if s.Mode == ModePercentile {
		n, ok := intValue(s.NumGroups)
		if !ok {
			return groupMode{}, fmt.Errorf("%w: percentile mode requires integer num_groups, got %T", ErrBadGroupFormat, s.NumGroups)
		}
		if n < 1 {
			return groupMode{}, fmt.Errorf("%w: num_groups must be positive, got %d", ErrBadGroupFormat, n)
		}
		m = groupMode{percentile: true, numGroups: n}
	}

	for i := 0; i < v.Len(); i++ {
		el := v.Index(i).Interface()
		switch el.(type) {
		case string, catalog.Column:
		default:
			return groupMode{}, fmt.Errorf("%w: group column %v must be a string or catalog.Column", ErrBadGroupFormat, el)
		}
	}

	return m, nil
}

// Resolve validates the spec and resolves every column reference against
// the table schema, preserving reference order.
func (s GroupSpec) Resolve(table *catalog.Table) ([]catalog.Column, error) {
	columns, _, err := s.resolve(table)
	return columns, err
}

// resolve returns the resolved column handles together with the closed mode.
func (s GroupSpec) resolve(table *catalog.Table) ([]catalog.Column, groupMode, error) {
	mode, err := s.mode()
	if err != nil {
		return nil, groupMode{}, err
	}

	v := reflect.ValueOf(s.Columns)
	resolved := make([]catalog.Column, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		name := columnName(v.Index(i).Interface())
		col, ok := table.Column(name)
		if !ok {
			return nil, groupMode{}, fmt.Errorf("%w: group column %s not found in table %s", ErrGroupFieldNotFound, name, table.Name())
		}
		resolved = append(resolved, col)
	}
	return resolved, mode, nil
}

// columnName derives the name of a column reference.
// Only called on references that passed validation.
func columnName(ref any) string {
	switch c := ref.(type) {
	case string:
		return c
	case catalog.Column:
		return c.Name()
	}
	return ""
}

// intValue accepts any Go integer kind and rejects floats, even when
// numerically whole. nil falls back to DefaultNumGroups.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case nil:
		return DefaultNumGroups, true
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		return int(n), true
	default:
		return 0, false
	}
}

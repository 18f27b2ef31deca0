// Package canonical produces stable byte encodings of structured values.
// The rowgroup extractor uses these encodings as deduplication fingerprints
// for group metadata objects: map keys are encoded in sorted order, so two
// objects with equal contents fingerprint identically regardless of key
// order. The encoding is a fingerprint only, never an output representation.
package canonical

import (
	"bytes"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkb"
	"github.com/vmihailenco/msgpack/v5"
)

// Fingerprint encodes v into canonical MessagePack bytes.
func Fingerprint(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(normalize(v)); err != nil {
		return nil, fmt.Errorf("failed to encode fingerprint: %w", err)
	}
	return buf.Bytes(), nil
}

// normalize rewrites values that have no stable MessagePack form.
// Geometry values are replaced by their WKB encoding.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case orb.Geometry:
		data, err := wkb.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return data
	default:
		return v
	}
}

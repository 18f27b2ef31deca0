package rowgroup

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/hugr-lab/rowgroup-go/internal/serialize"
)

// EncodeGroups serializes a deduplicated group table into a compact
// MessagePack+zstd blob. Callers that paginate grouped records attach the
// same group table to every page; the compressed form keeps that cheap.
func EncodeGroups(groups []Group) ([]byte, error) {
	data, err := msgpack.Marshal(groups)
	if err != nil {
		return nil, fmt.Errorf("failed to encode group table: %w", err)
	}
	return serialize.Compress(data)
}

// DecodeGroups deserializes a blob produced by EncodeGroups.
func DecodeGroups(data []byte) ([]Group, error) {
	raw, err := serialize.Decompress(data)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var groups []Group
	if err := msgpack.Unmarshal(raw, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode group table: %w", err)
	}
	return groups, nil
}

package rowgroup

import (
	"fmt"
	"testing"
)

// TestEncodeDecodeGroups tests the compressed group table round trip.
func TestEncodeDecodeGroups(t *testing.T) {
	groups := []Group{
		{ID: 1, Count: 2, First: map[string]any{"a": int64(1)}, Last: map[string]any{"a": int64(1)}},
		{ID: 2, Count: 1, First: map[string]any{"a": int64(2)}, Last: map[string]any{"a": int64(2)}},
	}

	data, err := EncodeGroups(groups)
	if err != nil {
		t.Fatalf("Expected successful encode, got error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Expected non-empty encoded group table")
	}

	decoded, err := DecodeGroups(data)
	if err != nil {
		t.Fatalf("Expected successful decode, got error: %v", err)
	}
	if len(decoded) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(decoded))
	}
	if decoded[0].ID != 1 || decoded[0].Count != 2 || decoded[1].ID != 2 {
		t.Errorf("Unexpected decoded groups: %v", decoded)
	}
	// msgpack decodes small integers into the narrowest width, so compare
	// values by rendering.
	if got := fmt.Sprint(decoded[0].First["a"]); got != "1" {
		t.Errorf("Decoded first_value a = %v, expected 1", got)
	}
}

// TestDecodeGroupsEmpty tests decoding an empty blob.
func TestDecodeGroupsEmpty(t *testing.T) {
	groups, err := DecodeGroups(nil)
	if err != nil {
		t.Fatalf("Expected no error for empty blob, got %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("Expected no groups, got %v", groups)
	}
}

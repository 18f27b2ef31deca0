package rowgroup

import (
	"errors"
	"log/slog"
	"testing"
)

// TestNewRequiresDB tests config validation.
func TestNewRequiresDB(t *testing.T) {
	_, err := New(ServiceConfig{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig, got %v", err)
	}
}

// TestConfigLogger tests logger resolution from the config.
func TestConfigLogger(t *testing.T) {
	custom := slog.Default().With("component", "test")
	if got := configLogger(ServiceConfig{Logger: custom}); got != custom {
		t.Error("Expected configured logger to be used")
	}

	level := slog.LevelDebug
	logger := configLogger(ServiceConfig{LogLevel: &level})
	if logger == nil {
		t.Fatal("Expected logger built from level, got nil")
	}
	if !logger.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("Expected debug level to be enabled")
	}

	if configLogger(ServiceConfig{}) != slog.Default() {
		t.Error("Expected default logger when nothing is configured")
	}
}

// TestDecodeMetadataValue tests decoding of the group metadata column.
func TestDecodeMetadataValue(t *testing.T) {
	decoded, err := decodeMetadataValue(`{"group_id": 1, "count": 2}`)
	if err != nil {
		t.Fatalf("Expected successful decode, got error: %v", err)
	}
	if decoded["group_id"] != float64(1) || decoded["count"] != float64(2) {
		t.Errorf("Unexpected decoded metadata: %v", decoded)
	}

	decoded, err = decodeMetadataValue([]byte(`{"group_id": 3}`))
	if err != nil {
		t.Fatalf("Expected successful decode from bytes, got error: %v", err)
	}
	if decoded["group_id"] != float64(3) {
		t.Errorf("Unexpected decoded metadata: %v", decoded)
	}

	passthrough := map[string]any{"group_id": int64(4)}
	decoded, err = decodeMetadataValue(passthrough)
	if err != nil {
		t.Fatalf("Expected map passthrough, got error: %v", err)
	}
	if decoded["group_id"] != int64(4) {
		t.Errorf("Unexpected passthrough metadata: %v", decoded)
	}

	decoded, err = decodeMetadataValue(nil)
	if err != nil {
		t.Fatalf("Expected nil to decode to nil, got error: %v", err)
	}
	if decoded != nil {
		t.Errorf("Expected nil metadata, got %v", decoded)
	}

	if _, err := decodeMetadataValue(42); err == nil {
		t.Error("Expected error for unsupported value type, got nil")
	}
	if _, err := decodeMetadataValue("{not json"); err == nil {
		t.Error("Expected error for malformed JSON, got nil")
	}
}

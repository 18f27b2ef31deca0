// Package serialize provides ZStandard compression for encoded group
// tables. The record retrieval layer repeats the group table across result
// pages, so the wire form is kept compact.
package serialize

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var (
	initOnce sync.Once
	initErr  error
	encoder  *zstd.Encoder
	decoder  *zstd.Decoder
)

// initCoders builds the shared coders once. EncodeAll/DecodeAll are safe
// for concurrent use, so a single pair serves all callers.
func initCoders() {
	encoder, initErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if initErr != nil {
		initErr = fmt.Errorf("failed to create zstd encoder: %w", initErr)
		return
	}
	decoder, initErr = zstd.NewReader(nil)
	if initErr != nil {
		initErr = fmt.Errorf("failed to create zstd decoder: %w", initErr)
	}
}

// Compress compresses data using ZStandard at the default level.
func Compress(data []byte) ([]byte, error) {
	initOnce.Do(initCoders)
	if initErr != nil {
		return nil, initErr
	}
	if len(data) == 0 {
		return []byte{}, nil
	}
	return encoder.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Decompress decompresses ZStandard data.
func Decompress(compressed []byte) ([]byte, error) {
	initOnce.Do(initCoders)
	if initErr != nil {
		return nil, initErr
	}
	if len(compressed) == 0 {
		return []byte{}, nil
	}
	decompressed, err := decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return decompressed, nil
}

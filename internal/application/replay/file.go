package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported replay format")
	ErrNoFrames          = errors.New("no frames to save")
)

// Format is an on-disk encoding of ReplayData.
type Format int

const (
	FormatJSON Format = iota
	FormatMsgpack
)

// FormatOf picks the encoding from a file extension: .json, or .mpk and
// .msgpack for the binary form.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON, nil
	case ".mpk", ".msgpack":
		return FormatMsgpack, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

// Marshal encodes data in format.
func Marshal(data ReplayData, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return json.MarshalIndent(data, "", "  ")
	case FormatMsgpack:
		return msgpack.Marshal(&data)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Unmarshal decodes b written in format.
func Unmarshal(b []byte, format Format) (ReplayData, error) {
	var data ReplayData
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(b, &data)
	case FormatMsgpack:
		err = msgpack.Unmarshal(b, &data)
	default:
		err = ErrUnsupportedFormat
	}
	return data, err
}

// Save writes data to filename in the format its extension names.
func Save(filename string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrNoFrames
	}
	format, err := FormatOf(filename)
	if err != nil {
		return err
	}

	b, err := Marshal(data, format)
	if err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("failed to create replay directory: %w", err)
	}
	if err := os.WriteFile(filename, b, 0o644); err != nil {
		return fmt.Errorf("failed to write replay: %w", err)
	}
	return nil
}

// Load reads a recording written by Save.
func Load(filename string) (*ReplayData, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	data, err := Unmarshal(b, format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// GenerateFilename names a recording after the current time.
func GenerateFilename(ext string) string {
	return fmt.Sprintf("replay_%s%s", time.Now().Format("20060102_150405"), ext)
}

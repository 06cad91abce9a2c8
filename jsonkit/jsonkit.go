// Package jsonkit provides helpers for working with JSON and JSONL files:
// counting, lazy iteration, loading, writing and converting between the two
// layouts. A ".json" file is expected to hold a single array payload whose
// elements are the records; a ".jsonl" file holds one record per line.
//
// Records travel through the package as raw JSON so no information is lost on
// a round trip; callers decode them into their own types when needed.
//
// Malformed records are skipped with a logged warning by default, matching
// the forgiving nature of scripting pipelines. The Strict option turns them
// into *MalformedRecordError failures instead.
package jsonkit

import (
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"go.llib.dev/scriptkit/errorkit"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is a single raw JSON value, one element of a JSON array payload or
// one line of a JSONL file.
type Record = jsoniter.RawMessage

// Format identifies the layout of a JSON file.
type Format string

const (
	// FormatJSON marks a file holding a single JSON array payload.
	FormatJSON Format = "json"
	// FormatJSONL marks a newline-delimited JSON file.
	FormatJSONL Format = "jsonl"
)

// ErrUnknownFormat is returned for file names
// with neither a ".json" nor a ".jsonl" extension.
const ErrUnknownFormat errorkit.Error = "jsonkit: unknown file format"

// DetectFormat determines the Format of a file from its extension.
func DetectFormat(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".jsonl":
		return FormatJSONL, nil
	default:
		return "", ErrUnknownFormat.Wrapf("%q of %s", ext, path)
	}
}

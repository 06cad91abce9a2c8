package jsonkit

import (
	"path/filepath"

	"go.llib.dev/scriptkit/pathutil"
)

// JSONToJSONL rewrites a JSON array file as a line-delimited file.
// When dst is empty, the target sits next to src with its extension
// swapped to ".jsonl".
func JSONToJSONL(src, dst string, opts ...Option) error {
	return convert(src, dst, FormatJSON, FormatJSONL, opts)
}

// JSONLToJSON rewrites a line-delimited file as a JSON array file.
// When dst is empty, the target sits next to src with its extension
// swapped to ".json".
func JSONLToJSON(src, dst string, opts ...Option) error {
	return convert(src, dst, FormatJSONL, FormatJSON, opts)
}

func convert(src, dst string, from, to Format, opts []Option) error {
	records, err := Load(src, append(opts, WithFormat(from))...)
	if err != nil {
		return err
	}
	if dst == "" {
		dst = filepath.Join(filepath.Dir(src), pathutil.Stem(src)+"."+string(to))
	}
	return Write(dst, records, append(opts, WithFormat(to))...)
}

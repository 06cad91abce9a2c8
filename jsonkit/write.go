package jsonkit

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	uuid "github.com/satori/go.uuid"

	"go.llib.dev/scriptkit/errorkit"
)

// Write persists records to a JSON or JSONL file. Array payloads are pretty
// printed with four space indentation, line-delimited payloads hold one
// compact record per line. Missing parent directories are created, and the
// file is written through a uniquely named temp file so readers never observe
// a half-written payload.
func Write[T any](path string, records []T, opts ...Option) error {
	c := toConfig(opts)
	format := c.format
	if format == "" {
		detected, err := DetectFormat(path)
		if err != nil {
			return err
		}
		format = detected
	}
	raws := make([]Record, 0, len(records))
	for i, record := range records {
		raw, err := json.Marshal(record)
		if err != nil {
			return &MalformedRecordError{Path: path, Index: i, Cause: err}
		}
		raws = append(raws, raw)
	}
	if c.less != nil {
		sort.SliceStable(raws, func(i, j int) bool {
			return c.less(raws[i], raws[j])
		})
	}
	var buf bytes.Buffer
	if format == FormatJSON {
		out, err := json.MarshalIndent(raws, "", "    ")
		if err != nil {
			return err
		}
		buf.Write(out)
		buf.WriteByte('\n')
	} else {
		for _, raw := range raws {
			// raw may carry indentation when it came from a pretty printed file
			if err := stdjson.Compact(&buf, raw); err != nil {
				return err
			}
			buf.WriteByte('\n')
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewV4().String())
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return errorkit.Merge(err, os.Remove(tmp))
	}
	return nil
}

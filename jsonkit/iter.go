package jsonkit

import (
	"bufio"
	"bytes"
	stdjson "encoding/json"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"go.llib.dev/scriptkit/errorkit"
	"go.llib.dev/scriptkit/iterkit"
)

// ErrNotAnArray is returned in strict mode when the payload of a ".json" file
// parses fine but is not the expected array of records.
const ErrNotAnArray errorkit.Error = "jsonkit: json payload is not an array"

// maxLineSize caps a single JSONL record, default bufio.Scanner would give up at 64KiB.
const maxLineSize = 16 << 20

// Iter returns a lazy iterator over the records of a JSON or JSONL file.
//
// Array payloads are enumerated element by element; line-delimited files are
// read line by line on demand, so arbitrarily long files can be streamed.
// When a ".json" file does not hold a single valid payload, its content is
// retried as line-delimited records, mirroring how loosely named files show
// up in practice.
//
// The returned iterator is single-use for line-delimited sources; terminal
// operations release the underlying file.
func Iter(path string, opts ...Option) (*iterkit.Iterator[Record], error) {
	c := toConfig(opts)
	format := c.format
	if format == "" {
		detected, err := DetectFormat(path)
		if err != nil {
			return nil, err
		}
		format = detected
	}
	if format == FormatJSON {
		records, err := readArray(path, c)
		if err != nil {
			return nil, err
		}
		return iterkit.FromSlice(records), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(nil, maxLineSize)
	return iterkit.FromPull[Record](&lineIter{
		scanner: scanner,
		closer:  f,
		path:    path,
		strict:  c.strict,
	}), nil
}

// lineIter is a pull iterator over the records of a line-delimited source.
type lineIter struct {
	scanner *bufio.Scanner
	closer  io.Closer
	path    string
	strict  bool

	line  int
	value Record
	err   error
}

func (i *lineIter) Next() bool {
	if i.err != nil {
		return false
	}
	for i.scanner.Scan() {
		i.line++
		raw := bytes.TrimSpace(i.scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		// jsoniter's Valid rejects bare scalars like `42`, stdlib's does not
		if !stdjson.Valid(raw) {
			if i.strict {
				i.err = &MalformedRecordError{Path: i.path, Line: i.line, Index: -1}
				return false
			}
			log.WithFields(log.Fields{"file": i.path, "line": i.line}).
				Warn("skipping malformed record")
			continue
		}
		// the scanner reuses its buffer between lines
		i.value = append(Record(nil), raw...)
		return true
	}
	i.err = i.scanner.Err()
	return false
}

func (i *lineIter) Value() Record { return i.value }

func (i *lineIter) Err() error { return i.err }

func (i *lineIter) Close() error { return i.closer.Close() }

func readArray(path string, c config) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// stdlib Valid rejects multi-value payloads, jsoniter's would accept them
	if !stdjson.Valid(data) {
		// not a single payload, assume line-delimited content
		return parseLines(data, path, c)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		if c.strict {
			return nil, ErrNotAnArray.Wrapf("%s", path)
		}
		log.WithField("file", path).Warn("json payload is not an array, nothing to read")
		return []Record{}, nil
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

func parseLines(data []byte, path string, c config) ([]Record, error) {
	records := []Record{}
	for n, line := range bytes.Split(data, []byte("\n")) {
		raw := bytes.TrimSpace(line)
		if len(raw) == 0 {
			continue
		}
		if !stdjson.Valid(raw) {
			if c.strict {
				return nil, &MalformedRecordError{Path: path, Line: n + 1, Index: -1}
			}
			log.WithFields(log.Fields{"file": path, "line": n + 1}).
				Warn("skipping malformed record")
			continue
		}
		records = append(records, append(Record(nil), raw...))
	}
	return records, nil
}

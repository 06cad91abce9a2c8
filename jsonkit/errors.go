package jsonkit

import (
	"fmt"

	"go.llib.dev/scriptkit/errorkit"
)

// ErrMalformedRecord matches every *MalformedRecordError with errors.Is.
const ErrMalformedRecord errorkit.Error = "jsonkit: malformed record"

// MalformedRecordError reports a record that could not be parsed as JSON,
// identifying it by line number for line based sources
// or by array index for array payloads.
type MalformedRecordError struct {
	// Path of the file holding the record.
	Path string
	// Line is the 1-based line number of the record, 0 when not line based.
	Line int
	// Index is the 0-based array index of the record, -1 when not array based.
	Index int
	// Cause of the parse failure, when known.
	Cause error
}

func (err *MalformedRecordError) Error() string {
	var where string
	switch {
	case 0 < err.Line:
		where = fmt.Sprintf("line %d", err.Line)
	case 0 <= err.Index:
		where = fmt.Sprintf("index %d", err.Index)
	default:
		where = "unknown position"
	}
	msg := fmt.Sprintf("%s in %s at %s", ErrMalformedRecord, err.Path, where)
	if err.Cause != nil {
		msg += ": " + err.Cause.Error()
	}
	return msg
}

func (err *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func (err *MalformedRecordError) Unwrap() error { return err.Cause }

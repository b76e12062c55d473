package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// RawEvent represents an unprocessed message from the source topic. Its
// Value is a JSON-encoded RawSubmission.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// ParseRawEvent decodes a RawEvent's value into the raw form fields. It only
// fails on malformed JSON; field validation is left to Build.
func ParseRawEvent(raw RawEvent) (RawSubmission, error) {
	var in RawSubmission
	if err := json.Unmarshal(raw.Value, &in); err != nil {
		return RawSubmission{}, fmt.Errorf("parse raw event: %w", err)
	}
	return in, nil
}

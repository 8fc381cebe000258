package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// dueDateLayouts are tried in order when parsing a due date. The SPA sends
// plain dates from <input type="date">.
var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// OptionalTime is a JSON timestamp that remembers whether it was present
// in the document. Set with a nil Time means an explicit null or "".
type OptionalTime struct {
	Set  bool
	Time *time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	o.Time = nil

	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("due date must be a string: %w", err)
	}

	t, err := ParseDueDate(raw)
	if err != nil {
		return err
	}
	o.Time = t
	return nil
}

// ParseDueDate parses s with the accepted due date layouts. A blank string
// yields nil.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid due date %q", s)
}

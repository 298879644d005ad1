package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// IDList accepts either a single id or an array of ids in JSON and always
// holds a list.
type IDList []string

// UnmarshalJSON implements json.Unmarshaler.
func (l *IDList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*l = nil
		return nil
	case data[0] == '"':
		var id string
		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}
		*l = IDList{id}
		return nil
	case data[0] == '[':
		var ids []string
		if err := json.Unmarshal(data, &ids); err != nil {
			return fmt.Errorf("id list must contain only strings: %w", err)
		}
		*l = IDList(ids)
		return nil
	default:
		return fmt.Errorf("id list must be a string or an array of strings, got %s", string(data))
	}
}

// Strings returns the ids as a plain slice.
func (l IDList) Strings() []string {
	return []string(l)
}

// valid reports whether the list is non-empty and holds no blank ids.
func (l IDList) valid() bool {
	if len(l) == 0 {
		return false
	}
	for _, id := range l {
		if strings.TrimSpace(id) == "" {
			return false
		}
	}
	return true
}

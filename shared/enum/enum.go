// Package enum holds fixed option sets stored as stable codes and shown
// through display labels. Labels and legacy aliases are accepted on input
// and normalised to the code.
package enum

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Option is the code and label pair offered to forms.
type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Choice is implemented by code types backed by a Set, so forms can list
// the allowed values.
type Choice interface {
	IsValid() bool
	Options() []Option
}

// Entry declares one member of a Set.
type Entry[C ~string] struct {
	Code    C
	Label   string
	Aliases []string
}

type Set[C ~string] struct {
	entries []Entry[C]
	lookup  map[string]C
}

func NewSet[C ~string](entries ...Entry[C]) *Set[C] {
	set := &Set[C]{
		entries: entries,
		lookup:  make(map[string]C, len(entries)*3),
	}

	for _, entry := range entries {
		set.lookup[fold(string(entry.Code))] = entry.Code
		set.lookup[fold(entry.Label)] = entry.Code

		for _, alias := range entry.Aliases {
			set.lookup[fold(alias)] = entry.Code
		}
	}

	return set
}

func fold(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func (s *Set[C]) Valid(code C) bool {
	for _, entry := range s.entries {
		if entry.Code == code {
			return true
		}
	}

	return false
}

// Label returns the display label, or the raw value when code is unknown.
func (s *Set[C]) Label(code C) string {
	for _, entry := range s.entries {
		if entry.Code == code {
			return entry.Label
		}
	}

	return string(code)
}

// Normalize maps a code, label or alias to its code.
func (s *Set[C]) Normalize(raw string) (C, bool) {
	code, ok := s.lookup[fold(raw)]

	return code, ok
}

func (s *Set[C]) Codes() []C {
	res := make([]C, 0, len(s.entries))
	for _, entry := range s.entries {
		res = append(res, entry.Code)
	}

	return res
}

func (s *Set[C]) Options() []Option {
	res := make([]Option, 0, len(s.entries))
	for _, entry := range s.entries {
		res = append(res, Option{Code: string(entry.Code), Label: entry.Label})
	}

	return res
}

// Unmarshal decodes a JSON string into target, normalising known labels and
// aliases. Unknown values are kept verbatim so validation can reject them.
func Unmarshal[C ~string](set *Set[C], data []byte, target *C) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("enum value must be a string: %w", err)
	}

	if code, ok := set.Normalize(raw); ok {
		*target = code

		return nil
	}

	*target = C(strings.TrimSpace(raw))

	return nil
}

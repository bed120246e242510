// Package menuconfig exposes menu files as ordered, case-insensitive
// configuration sections regardless of the on-disk format.
package menuconfig

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/osse101/chestmenus/internal/domain"
	"github.com/osse101/chestmenus/internal/utils"
)

// Section is an ordered mapping of keys to scalars, lists or nested sections.
// Key lookups ignore case.
type Section struct {
	keys   []string       // original spelling, insertion order
	values map[string]any // folded key -> value
}

// NewSection returns an empty section.
func NewSection() *Section {
	return &Section{values: make(map[string]any)}
}

// Set stores a value, keeping the first position of a repeated key.
// Accepted values are nil, string, bool, int, int64, float64, []any and *Section.
func (s *Section) Set(key string, value any) {
	folded := utils.FoldKey(key)
	if _, exists := s.values[folded]; !exists {
		s.keys = append(s.keys, key)
	}
	s.values[folded] = value
}

// Keys returns the top-level keys in their source order.
func (s *Section) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *Section) get(key string) (any, bool) {
	v, ok := s.values[utils.FoldKey(key)]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Contains reports whether the key holds a non-null value.
func (s *Section) Contains(key string) bool {
	_, ok := s.get(key)
	return ok
}

// GetSection returns the nested section stored under key.
func (s *Section) GetSection(key string) (*Section, bool) {
	v, ok := s.get(key)
	if !ok {
		return nil, false
	}
	sub, ok := v.(*Section)
	return sub, ok
}

// GetString returns a scalar value rendered as a string.
func (s *Section) GetString(key string) (string, bool) {
	v, ok := s.get(key)
	if !ok {
		return "", false
	}
	return scalarString(v)
}

// GetRequiredString fails with ErrMissingValue or ErrInvalidValue.
func (s *Section) GetRequiredString(key string) (string, error) {
	v, ok := s.get(key)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrMissingValue, key)
	}
	str, ok := scalarString(v)
	if !ok {
		return "", fmt.Errorf("%w: %q is not a text value", domain.ErrInvalidValue, key)
	}
	return str, nil
}

// GetRequiredInt fails with ErrMissingValue or ErrInvalidValue.
func (s *Section) GetRequiredInt(key string) (int, error) {
	v, ok := s.get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrMissingValue, key)
	}
	n, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("%w: %q must be a whole number, found %v", domain.ErrInvalidValue, key, v)
	}
	return n, nil
}

// GetDouble fails with ErrMissingValue or ErrInvalidValue.
func (s *Section) GetDouble(key string) (float64, error) {
	v, ok := s.get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrMissingValue, key)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%w: %q must be a number, found %v", domain.ErrInvalidValue, key, v)
	}
	return f, nil
}

// GetBool returns the boolean under key, false when absent or not a boolean.
func (s *Section) GetBool(key string) bool {
	v, ok := s.get(key)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, err := strconv.ParseBool(strings.TrimSpace(b))
		return err == nil && parsed
	}
	return false
}

// GetStringList returns a list of scalars. A single scalar becomes a
// one-element list. Nested sections inside the list are skipped.
func (s *Section) GetStringList(key string) ([]string, bool) {
	v, ok := s.get(key)
	if !ok {
		return nil, false
	}
	if list, isList := v.([]any); isList {
		out := make([]string, 0, len(list))
		for _, item := range list {
			if str, ok := scalarString(item); ok {
				out = append(out, str)
			}
		}
		return out, true
	}
	if str, ok := scalarString(v); ok {
		return []string{str}, true
	}
	return nil, false
}

// IsList reports whether the key holds a list value.
func (s *Section) IsList(key string) bool {
	v, ok := s.get(key)
	if !ok {
		return false
	}
	_, isList := v.([]any)
	return isList
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	}
	return "", false
}

func toInt(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t == math.Trunc(t) {
			return int(t), true
		}
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}

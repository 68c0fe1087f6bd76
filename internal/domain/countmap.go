package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// CountMap maps a free-form key (custom activity id or participant id) to a count.
type CountMap map[string]int

// ParseCountMap decodes a flat JSON object of non-negative integers.
// Empty input and JSON null yield an empty map.
func ParseCountMap(raw []byte) (CountMap, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return CountMap{}, nil
	}

	var m map[string]int
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("count map: %v: %w", err, ErrInvalidConfiguration)
	}

	out := CountMap(m)
	if out == nil {
		out = CountMap{}
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseCountMapOrEmpty is ParseCountMap that degrades to an empty map.
// The parse error is still returned so the caller can log it.
func ParseCountMapOrEmpty(raw []byte) (CountMap, error) {
	m, err := ParseCountMap(raw)
	if err != nil {
		return CountMap{}, err
	}
	return m, nil
}

// Validate rejects empty keys and negative counts.
func (m CountMap) Validate() error {
	for k, v := range m {
		if k == "" {
			return fmt.Errorf("count map: empty key: %w", ErrInvalidConfiguration)
		}
		if v < 0 {
			return fmt.Errorf("count map: %q is negative: %w", k, ErrInvalidConfiguration)
		}
	}
	return nil
}

// Encode returns the JSON form; a nil map encodes as an empty object.
func (m CountMap) Encode() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]int(m))
}

func (m CountMap) Clone() CountMap {
	if m == nil {
		return CountMap{}
	}
	return maps.Clone(m)
}

// Total sums all counts.
func (m CountMap) Total() int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

// Keys returns the keys in sorted order.
func (m CountMap) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

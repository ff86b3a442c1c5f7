package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Snapshot maps categories to their records, preserving category order
// in both directions of JSON encoding.
type Snapshot struct {
	order   []Category
	records map[Category][]Record
}

// NewSnapshot creates a snapshot with the given categories, each empty
func NewSnapshot(categories ...Category) *Snapshot {
	s := &Snapshot{
		records: make(map[Category][]Record, len(categories)),
	}
	for _, c := range categories {
		s.ensure(c)
	}
	return s
}

// Append adds a record to the end of a category, creating the category if needed
func (s *Snapshot) Append(c Category, r Record) {
	s.ensure(c)
	s.records[c] = append(s.records[c], r)
}

// Categories returns the categories in order
func (s *Snapshot) Categories() []Category {
	out := make([]Category, len(s.order))
	copy(out, s.order)
	return out
}

// Records returns a copy of the records for a category
func (s *Snapshot) Records(c Category) []Record {
	recs := s.records[c]
	out := make([]Record, len(recs))
	copy(out, recs)
	return out
}

// Len returns the total number of records across all categories
func (s *Snapshot) Len() int {
	n := 0
	for _, recs := range s.records {
		n += len(recs)
	}
	return n
}

func (s *Snapshot) ensure(c Category) {
	if s.records == nil {
		s.records = make(map[Category][]Record)
	}
	if _, ok := s.records[c]; ok {
		return
	}
	s.order = append(s.order, c)
	s.records[c] = []Record{}
}

// MarshalJSON encodes the snapshot as an object keyed by category, using
// ", " and ": " separators. json.Marshal compacts Marshaler output, so call
// this directly when the spacing matters.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range s.order {
		if i > 0 {
			buf.WriteString(", ")
		}

		key, err := json.Marshal(string(c))
		if err != nil {
			return nil, fmt.Errorf("marshal category %q: %w", c, err)
		}
		buf.Write(key)
		buf.WriteString(": [")

		for j, r := range s.records[c] {
			if j > 0 {
				buf.WriteString(", ")
			}
			val, err := r.MarshalJSON()
			if err != nil {
				return nil, fmt.Errorf("marshal record %d of %q: %w", j, c, err)
			}
			buf.Write(val)
		}
		buf.WriteByte(']')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keyed by category, keeping key order
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("snapshot must be a JSON object, got %v", tok)
	}

	decoded := NewSnapshot()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read category: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("category key must be a string, got %v", tok)
		}

		var recs []Record
		if err := dec.Decode(&recs); err != nil {
			return fmt.Errorf("decode records for %q: %w", key, err)
		}

		c := Category(key)
		decoded.ensure(c)
		decoded.records[c] = append(decoded.records[c], recs...)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read snapshot end: %w", err)
	}

	*s = *decoded
	return nil
}

package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestNewSnapshot_EmptyCategories(t *testing.T) {
	s := NewSnapshot(DefaultCategories()...)

	if got := s.Categories(); !reflect.DeepEqual(got, []Category{CategoryHerbs, CategoryOres}) {
		t.Errorf("Expected [Herbs Ores], got %v", got)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty snapshot, got %d records", s.Len())
	}

	data, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(data) != `{"Herbs": [], "Ores": []}` {
		t.Errorf("Expected empty arrays, got %s", data)
	}
}

func TestSnapshot_Append(t *testing.T) {
	s := NewSnapshot(CategoryHerbs)
	s.Append(CategoryHerbs, Record{X: 0.1, Y: 0.2, MapID: 1})
	s.Append(CategoryHerbs, Record{X: 0.3, Y: 0.4, MapID: 2})
	s.Append("Fish", Record{X: 0.5, Y: 0.6, MapID: 3})

	if got := s.Categories(); !reflect.DeepEqual(got, []Category{CategoryHerbs, "Fish"}) {
		t.Errorf("Expected new category appended after existing ones, got %v", got)
	}

	herbs := s.Records(CategoryHerbs)
	if len(herbs) != 2 || herbs[1].MapID != 2 {
		t.Errorf("Expected records in append order, got %+v", herbs)
	}

	// Records returns a copy
	herbs[0].MapID = 99
	if s.Records(CategoryHerbs)[0].MapID != 1 {
		t.Error("Expected Records to return a copy")
	}

	if s.Len() != 3 {
		t.Errorf("Expected 3 records, got %d", s.Len())
	}
}

func TestSnapshot_MarshalKeyOrder(t *testing.T) {
	s := NewSnapshot("Ores", "Herbs")
	s.Append("Ores", Record{X: 0.52, Y: 0.74, MapID: 1434})

	data, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := `{"Ores": [{"x": 0.52, "y": 0.74, "mapID": 1434}], "Herbs": []}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}

func TestSnapshot_MarshalSeparators(t *testing.T) {
	s := NewSnapshot(DefaultCategories()...)
	s.Append(CategoryHerbs, Record{X: 0.25, Y: 0.33, MapID: 1434})
	s.Append(CategoryHerbs, Record{X: 1, Y: 0, MapID: 7})
	s.Append(CategoryOres, Record{X: 0.52, Y: 0.74, MapID: 1434})

	data, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := `{"Herbs": [{"x": 0.25, "y": 0.33, "mapID": 1434}, {"x": 1.0, "y": 0.0, "mapID": 7}], ` +
		`"Ores": [{"x": 0.52, "y": 0.74, "mapID": 1434}]}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}

func TestRecord_MarshalJSON(t *testing.T) {
	tests := []struct {
		record   Record
		expected string
	}{
		{Record{X: 0.25, Y: 0.33, MapID: 1434}, `{"x": 0.25, "y": 0.33, "mapID": 1434}`},
		{Record{X: 0.52, Y: 0.74, MapID: 1434}, `{"x": 0.52, "y": 0.74, "mapID": 1434}`},
		{Record{X: 2, Y: -1, MapID: 0}, `{"x": 2.0, "y": -1.0, "mapID": 0}`},
	}

	for _, tt := range tests {
		data, err := tt.record.MarshalJSON()
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if string(data) != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, data)
		}
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s := NewSnapshot(DefaultCategories()...)
	s.Append(CategoryHerbs, Record{X: 0.25, Y: 0.33, MapID: 1434})
	s.Append(CategoryOres, Record{X: 0.52, Y: 0.74, MapID: 1434})

	data, err := s.MarshalJSON()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var decoded Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !reflect.DeepEqual(&decoded, s) {
		t.Errorf("Expected round trip to reproduce snapshot, got %+v", decoded)
	}
}

func TestSnapshot_UnmarshalPreservesOrder(t *testing.T) {
	var s Snapshot
	err := json.Unmarshal([]byte(`{"Ores": [{"x": 0.5, "y": 0.5, "mapID": 7}], "Herbs": []}`), &s)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got := s.Categories(); !reflect.DeepEqual(got, []Category{CategoryOres, CategoryHerbs}) {
		t.Errorf("Expected document key order, got %v", got)
	}
	if ores := s.Records(CategoryOres); len(ores) != 1 || ores[0] != (Record{X: 0.5, Y: 0.5, MapID: 7}) {
		t.Errorf("Unexpected ores: %+v", ores)
	}
}

func TestSnapshot_UnmarshalRejectsNonObject(t *testing.T) {
	tests := []string{
		`[]`,
		`{"Herbs": {"x": 1}}`,
		`{"Herbs": [`,
	}

	for _, input := range tests {
		var s Snapshot
		if err := json.Unmarshal([]byte(input), &s); err == nil {
			t.Errorf("Expected error for %s", input)
		}
	}
}

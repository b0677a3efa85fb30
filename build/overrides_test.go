package build

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestMerger_NestedMapsMergeArraysReplace(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sergio.json"), `{"skills":["c"],"meta":{"y":3}}`)

	merger := &Merger{Dir: dir}
	base := Record{
		"skills": []any{"a", "b"},
		"meta":   map[string]any{"x": 1.0, "y": 2.0},
	}

	got := merger.Apply(base, "sergio")
	want := Record{
		"skills": []any{"c"},
		"meta":   map[string]any{"x": 1.0, "y": 3.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("merge mismatch:\n got %#v\nwant %#v", got, want)
	}
}

func TestMerger_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sergio.json"), `{"skills":["c"],"meta":{"y":3}}`)

	merger := &Merger{Dir: dir}
	base := Record{
		"skills": []any{"a", "b"},
		"meta":   map[string]any{"x": 1.0, "y": 2.0},
	}

	once := merger.Apply(base, "sergio")
	twice := merger.Apply(once, "sergio")
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected idempotent merge:\n once %#v\ntwice %#v", once, twice)
	}
}

func TestMerger_BaseOnlyKeysPreserved(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sergio.json"), `{"basics":{"label":"Backend Engineer"}}`)

	merger := &Merger{Dir: dir}
	base := Record{
		"basics": map[string]any{"name": "Sergio", "label": "Engineer"},
		"work":   []any{map[string]any{"name": "ACME"}},
	}

	got := merger.Apply(base, "sergio")
	basics := got["basics"].(map[string]any)
	if basics["name"] != "Sergio" {
		t.Fatalf("expected base-only key preserved, got %#v", basics)
	}
	if basics["label"] != "Backend Engineer" {
		t.Fatalf("expected override applied, got %#v", basics)
	}
	if _, ok := got["work"]; !ok {
		t.Fatal("expected untouched base key to survive")
	}
}

func TestMerger_AbsentOverrideIsNotAnError(t *testing.T) {
	logger := &captureLogger{}
	merger := &Merger{Dir: t.TempDir(), Logger: logger}
	base := Record{"basics": map[string]any{"name": "Sergio"}}

	got := merger.Apply(base, "sergio")
	if !reflect.DeepEqual(got, base) {
		t.Fatalf("expected record unchanged, got %#v", got)
	}
	if len(logger.infos) != 0 || len(logger.errors) != 0 {
		t.Fatalf("absence must not warn, got %v %v", logger.infos, logger.errors)
	}
}

func TestMerger_InvalidOverrideWarnsAndSkips(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "sergio.json"), "{broken")

	logger := &captureLogger{}
	merger := &Merger{Dir: dir, Logger: logger}
	base := Record{"basics": map[string]any{"name": "Sergio"}}

	got := merger.Apply(base, "sergio")
	if !reflect.DeepEqual(got, base) {
		t.Fatalf("expected record unchanged, got %#v", got)
	}
	if len(logger.infos) != 1 {
		t.Fatalf("expected one warning, got %v", logger.infos)
	}
}

package build

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Merger applies persona-specific override documents to records. An
// override failure never aborts rendering of the record it targets.
type Merger struct {
	Dir    string
	Logger Logger
}

// Apply deep-merges the persona's override document into rec and returns
// the merged record. An absent override file is expected and returns rec
// unchanged without a warning; an unreadable or unparseable one logs a
// warning and returns rec unchanged.
func (m *Merger) Apply(rec Record, personaID string) Record {
	logger := m.Logger
	if logger == nil {
		logger = NopLogger{}
	}

	path := filepath.Join(m.Dir, personaID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Infof("override document at %s is not readable, skipping: %v", path, err)
		}
		return rec
	}

	var override map[string]any
	if err := json.Unmarshal(data, &override); err != nil {
		logger.Infof("override document at %s is not valid JSON, skipping: %v", path, err)
		return rec
	}

	return Record(deepMerge(rec, override))
}

// deepMerge merges override into base. When both values at a key are
// non-nil mappings they merge recursively; everything else (scalars,
// sequences, nulls) replaces the base value wholesale. Keys present only
// in base are preserved. The result shares no overridden subtrees with
// base.
func deepMerge(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		baseMap, baseOK := out[key].(map[string]any)
		overrideMap, overrideOK := value.(map[string]any)
		if baseOK && overrideOK && baseMap != nil && overrideMap != nil {
			out[key] = deepMerge(baseMap, overrideMap)
			continue
		}
		out[key] = value
	}
	return out
}

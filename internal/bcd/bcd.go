// Package bcd loads browser-compat-data style JSON and answers
// dotted-key feature lookups for the Compat and Specifications macros.
package bcd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Status carries the standardization flags of a feature.
type Status struct {
	Deprecated    bool `json:"deprecated"`
	Experimental  bool `json:"experimental"`
	StandardTrack bool `json:"standard_track"`
}

// Feature is the flattened compat record for one dotted key,
// e.g. "api.Element.ariaLevel".
type Feature struct {
	Key      string
	Support  map[string]string // browser -> version ("12", "yes", "no")
	SpecURLs []string
	Status   Status
}

// Store holds all features from a compat data file. It is read-only
// after Load and safe for concurrent lookups across parallel renders.
type Store struct {
	features map[string]Feature
}

// Load reads and parses a compat data file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read compat data: %w", err)
	}
	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return store, nil
}

// Parse builds a store from raw compat data JSON. The format is a tree
// of nested objects where any node may carry a "__compat" record; the
// path to that node becomes the feature's dotted key.
func Parse(data []byte) (*Store, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid compat data: %w", err)
	}

	store := &Store{features: make(map[string]Feature)}
	for name, raw := range root {
		if err := store.walk(name, raw); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// Lookup returns the feature for a dotted key.
func (s *Store) Lookup(key string) (Feature, bool) {
	f, ok := s.features[key]
	return f, ok
}

// Len returns the number of features in the store.
func (s *Store) Len() int {
	return len(s.features)
}

// Keys returns all feature keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.features))
	for k := range s.features {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Store) walk(key string, raw json.RawMessage) error {
	var node map[string]json.RawMessage
	if err := json.Unmarshal(raw, &node); err != nil {
		// Leaf scalars (metadata fields) are not feature nodes.
		return nil
	}

	for name, child := range node {
		if name == "__compat" {
			feature, err := parseCompat(key, child)
			if err != nil {
				return fmt.Errorf("feature %s: %w", key, err)
			}
			s.features[key] = feature
			continue
		}
		if err := s.walk(key+"."+name, child); err != nil {
			return err
		}
	}
	return nil
}

// compatRecord mirrors the "__compat" JSON shape. spec_url may be a
// string or an array of strings; per-browser support may be a single
// statement or an array of statements.
type compatRecord struct {
	SpecURL json.RawMessage            `json:"spec_url"`
	Support map[string]json.RawMessage `json:"support"`
	Status  Status                     `json:"status"`
}

type supportStatement struct {
	VersionAdded json.RawMessage `json:"version_added"`
}

func parseCompat(key string, raw json.RawMessage) (Feature, error) {
	var rec compatRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Feature{}, fmt.Errorf("invalid __compat record: %w", err)
	}

	feature := Feature{
		Key:     key,
		Support: make(map[string]string, len(rec.Support)),
		Status:  rec.Status,
	}

	if len(rec.SpecURL) > 0 {
		var single string
		if err := json.Unmarshal(rec.SpecURL, &single); err == nil {
			feature.SpecURLs = []string{single}
		} else {
			var many []string
			if err := json.Unmarshal(rec.SpecURL, &many); err != nil {
				return Feature{}, fmt.Errorf("invalid spec_url: %w", err)
			}
			feature.SpecURLs = many
		}
	}

	for browser, rawSupport := range rec.Support {
		feature.Support[browser] = parseSupport(rawSupport)
	}

	return feature, nil
}

// parseSupport reduces a support statement (or the first of an array of
// statements) to a display value: a version string, "yes", or "no".
func parseSupport(raw json.RawMessage) string {
	var stmt supportStatement
	if err := json.Unmarshal(raw, &stmt); err != nil {
		var stmts []supportStatement
		if err := json.Unmarshal(raw, &stmts); err != nil || len(stmts) == 0 {
			return "no"
		}
		stmt = stmts[0]
	}

	// Absent and JSON null both mean unsupported.
	if len(stmt.VersionAdded) == 0 || string(stmt.VersionAdded) == "null" {
		return "no"
	}
	var version string
	if err := json.Unmarshal(stmt.VersionAdded, &version); err == nil {
		return version
	}
	var supported bool
	if err := json.Unmarshal(stmt.VersionAdded, &supported); err == nil {
		if supported {
			return "yes"
		}
		return "no"
	}
	return "no"
}

package ruleset

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formvalidate/pkg/validation"
)

// Load parses a single rule-set document. The payload may be JSON or YAML;
// JSON is attempted first since every JSON document is also valid YAML.
func Load(data []byte, source string) (*Store, error) {
	store := newStore()
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}
	if err := store.merge(doc, source); err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile reads and parses a rule-set document from disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ruleset: read %s: %w", path, err)
	}
	return Load(data, filepath.Clean(path))
}

// LoadFS walks the provided filesystem and parses every JSON/YAML rule-set
// file found. Declaring the same field in two files is an error. When fsys is
// nil or no rule files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isRuleFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("ruleset: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		return store.merge(doc, path)
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func newStore() *Store {
	return &Store{fields: make(map[string][]validation.Rule)}
}

func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("ruleset: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("ruleset: parse %s: invalid JSON or YAML", source)
}

func isRuleFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

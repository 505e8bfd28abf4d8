package verify

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sort"
)

// Entity is the subset of an entity definition the checks look at.
// Sections the checks only test for presence are kept raw.
type Entity struct {
	Name               string                     `json:"name"`
	TableName          string                     `json:"tableName"`
	PrimaryKey         string                     `json:"primaryKey"`
	DefaultConnection  string                     `json:"defaultConnection"`
	AllowedConnections []string                   `json:"allowedConnections"`
	Fields             map[string]json.RawMessage `json:"fields"`
	Operations         json.RawMessage            `json:"operations"`
	Validation         json.RawMessage            `json:"validation"`
	Cache              json.RawMessage            `json:"cache"`
}

// EntityFile is the top level of the entity configuration file.
type EntityFile struct {
	Entities map[string]Entity `json:"entities"`
}

// LoadEntities parses the entity configuration file at path. A file without an
// "entities" object (or with a null one) is an error; an empty object is not.
func LoadEntities(path string) (*EntityFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var ef EntityFile
	if err := json.Unmarshal(raw, &ef); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if ef.Entities == nil {
		return nil, fmt.Errorf("%s has no 'entities' object", path)
	}
	return &ef, nil
}

// Names returns the entity keys in sorted order.
func (ef *EntityFile) Names() []string {
	names := make([]string, 0, len(ef.Entities))
	for name := range ef.Entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckEntity reports structural problems of a single entity definition.
func CheckEntity(key string, e Entity) []Finding {
	var out []Finding
	add := func(sev Severity, format string, a ...any) {
		out = append(out, Finding{Subject: key, Severity: sev, Message: fmt.Sprintf(format, a...)})
	}

	if e.Name == "" {
		add(SeverityError, "missing field 'name'")
	}
	if e.TableName == "" {
		add(SeverityError, "missing field 'tableName'")
	}
	if e.PrimaryKey == "" {
		add(SeverityError, "missing field 'primaryKey'")
	}

	if e.AllowedConnections == nil {
		add(SeverityWarning, "no 'allowedConnections' configured, multi-connection requests may fail")
	} else if e.DefaultConnection != "" && !slices.Contains(e.AllowedConnections, e.DefaultConnection) {
		add(SeverityError, "'defaultConnection' (%s) is not in 'allowedConnections'", e.DefaultConnection)
	}

	if len(e.Fields) == 0 {
		add(SeverityError, "no fields defined")
	} else if _, ok := e.Fields[e.PrimaryKey]; !ok {
		add(SeverityError, "primary key field '%s' not found in 'fields'", e.PrimaryKey)
	}

	if absent(e.Operations) {
		add(SeverityWarning, "no 'operations' section")
	}
	if absent(e.Validation) {
		add(SeverityWarning, "no 'validation' section")
	}
	if absent(e.Cache) {
		add(SeverityWarning, "no 'cache' section")
	}
	return out
}

func absent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

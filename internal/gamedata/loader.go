package gamedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Skipped describes a record dropped during decoding.
type Skipped struct {
	Index int    // Position in the source array
	Err   error  // Why the record was rejected
	ID    string // Identity, if one could be read
}

// LoadFile reads a definition file from fsys and decodes it.
// A file that cannot be read or is not an array of records fails with
// ErrDataUnavailable. Individual malformed records are skipped and logged.
func LoadFile(fsys fs.FS, name string) ([]AbilityDefinition, error) {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrDataUnavailable, name, err)
	}

	defs, skipped, err := Decode(name, content)
	if err != nil {
		return nil, err
	}

	for _, s := range skipped {
		slog.Warn("skipping malformed definition",
			"file", name,
			"index", s.Index,
			"identity", s.ID,
			"err", s.Err)
	}
	return defs, nil
}

// Decode parses the content of a definition file. The format is picked from
// the file extension: .yaml and .yml use YAML, anything else JSON.
// Records that fail to decode or validate are returned in skipped, in order.
func Decode(name string, content []byte) (defs []AbilityDefinition, skipped []Skipped, err error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return decodeYAML(name, content)
	default:
		return decodeJSON(name, content)
	}
}

func decodeJSON(name string, content []byte) ([]AbilityDefinition, []Skipped, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to parse JSON from %s: %v", ErrDataUnavailable, name, err)
	}

	defs := make([]AbilityDefinition, 0, len(raw))
	var skipped []Skipped
	for i, msg := range raw {
		var def AbilityDefinition
		if err := json.Unmarshal(msg, &def); err != nil {
			skipped = append(skipped, Skipped{Index: i, Err: err, ID: peekJSONIdentity(msg)})
			continue
		}
		if err := def.Validate(); err != nil {
			skipped = append(skipped, Skipped{Index: i, Err: err, ID: def.Identity})
			continue
		}
		defs = append(defs, def)
	}
	return defs, skipped, nil
}

func decodeYAML(name string, content []byte) ([]AbilityDefinition, []Skipped, error) {
	var nodes []yaml.Node
	if err := yaml.Unmarshal(content, &nodes); err != nil {
		return nil, nil, fmt.Errorf("%w: failed to parse YAML from %s: %v", ErrDataUnavailable, name, err)
	}

	defs := make([]AbilityDefinition, 0, len(nodes))
	var skipped []Skipped
	for i := range nodes {
		var def AbilityDefinition
		if err := nodes[i].Decode(&def); err != nil {
			skipped = append(skipped, Skipped{Index: i, Err: err, ID: peekYAMLIdentity(&nodes[i])})
			continue
		}
		if err := def.Validate(); err != nil {
			skipped = append(skipped, Skipped{Index: i, Err: err, ID: def.Identity})
			continue
		}
		defs = append(defs, def)
	}
	return defs, skipped, nil
}

// peekJSONIdentity pulls the identity out of a record that failed to decode
// so the warning can name it.
func peekJSONIdentity(msg json.RawMessage) string {
	var probe struct {
		Identity string `json:"identity"`
	}
	if err := json.Unmarshal(msg, &probe); err != nil {
		return ""
	}
	return probe.Identity
}

func peekYAMLIdentity(node *yaml.Node) string {
	var probe struct {
		Identity string `yaml:"identity"`
	}
	if err := node.Decode(&probe); err != nil {
		return ""
	}
	return probe.Identity
}

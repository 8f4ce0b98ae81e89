// Package data provides the embedded ability and passive definitions.
package data

import "embed"

// dataFS embeds all JSON files from the data directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// DefinitionFiles lists the embedded definition files in precedence order.
// When an identity appears in more than one file, the earlier file wins.
var DefinitionFiles = []string{"abilities.json", "passives.json"}

// FS returns the embedded filesystem containing game data.
func FS() embed.FS {
	return dataFS
}

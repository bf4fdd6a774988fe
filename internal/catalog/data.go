package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/champions.json
var championsJSON []byte

type championFile struct {
	Champions []Champion `json:"champions"`
}

// Load parses the embedded champion data into a catalog. The data retains the
// duplicate rows of the source export, which New resolves last-wins.
func Load() (*Catalog, error) {
	var file championFile
	if err := json.Unmarshal(championsJSON, &file); err != nil {
		return nil, fmt.Errorf("parse embedded champion data: %w", err)
	}
	if len(file.Champions) == 0 {
		return nil, fmt.Errorf("embedded champion data is empty")
	}
	return New(file.Champions)
}

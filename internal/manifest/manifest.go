// Package manifest loads ATLauncher instance.json files.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BraianAzcune/Minecraft-Mod-Excel-Reporter-Modrinth/internal/model"
)

// Load reads and decodes the manifest at path. A missing or unreadable file,
// or malformed JSON, is returned as an error; no partial result is produced.
func Load(path string) (model.Instance, error) {
	var inst model.Instance

	data, err := os.ReadFile(path)
	if err != nil {
		return inst, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &inst); err != nil {
		return inst, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	return inst, nil
}

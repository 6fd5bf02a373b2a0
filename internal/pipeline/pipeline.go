// Package pipeline composes the manifest loader, extractor and report
// builder into the one-shot conversion run.
package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/BraianAzcune/Minecraft-Mod-Excel-Reporter-Modrinth/internal/extract"
	"github.com/BraianAzcune/Minecraft-Mod-Excel-Reporter-Modrinth/internal/manifest"
	"github.com/BraianAzcune/Minecraft-Mod-Excel-Reporter-Modrinth/internal/report"
)

// Pipeline runs the manifest-to-report conversion.
type Pipeline struct {
	builder *report.Builder
}

// New creates a Pipeline writing reports with the given builder.
func New(builder *report.Builder) *Pipeline {
	return &Pipeline{builder: builder}
}

// Run converts the manifest at path into an Excel report placed next to it,
// named "Mods {version}.xlsx". Returns the path of the written report. Every
// mod entry in the manifest yields exactly one report row.
func (p *Pipeline) Run(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("pipeline: resolve %s: %w", path, err)
	}

	inst, err := manifest.Load(abs)
	if err != nil {
		return "", fmt.Errorf("pipeline: %w", err)
	}

	records := extract.NormalizeAll(inst.Launcher.Mods)
	categories := extract.CategoryIndex(records)

	out := filepath.Join(filepath.Dir(abs), report.Filename(inst.Launcher.Version))
	if err := p.builder.WriteFile(out, records, categories); err != nil {
		return "", fmt.Errorf("pipeline: %w", err)
	}
	return out, nil
}

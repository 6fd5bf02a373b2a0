// Package extract turns installed-mod entries into normalized report records.
package extract

import (
	"github.com/BraianAzcune/Minecraft-Mod-Excel-Reporter-Modrinth/internal/model"
)

// Fallback values used when a mod has no Modrinth project snapshot.
const (
	noSourceDescription = "No Modrinth source available (untrusted source)"
	noSourceLinkText    = "No Modrinth"
)

// linkLabel is the display text for cells that carry a real hyperlink.
const linkLabel = "Modrinth"

const modrinthModURL = "https://modrinth.com/mod/"

// Normalize derives the report record for one mod. It is total: any mod
// produces exactly one record, with fallback values filling in for a missing
// Modrinth snapshot.
func Normalize(mod model.Mod) model.Record {
	rec := model.Record{
		ModName:  displayName(mod),
		FileName: mod.File,
	}

	project := mod.ModrinthProject
	if project == nil {
		rec.Description = noSourceDescription
		rec.LinkText = noSourceLinkText
		return rec
	}

	rec.Description = project.Description
	rec.Detail = project.Body
	rec.UpdatedAt = project.Updated
	for _, c := range project.Categories {
		if c != "" {
			rec.Categories = append(rec.Categories, c)
		}
	}
	if url := ProjectURL(project); url != "" {
		rec.LinkURL = url
		rec.LinkText = linkLabel
	}
	return rec
}

// NormalizeAll maps Normalize over the mod list, preserving order. Always
// returns one record per mod.
func NormalizeAll(mods []model.Mod) []model.Record {
	records := make([]model.Record, 0, len(mods))
	for _, mod := range mods {
		records = append(records, Normalize(mod))
	}
	return records
}

// ProjectURL builds the canonical Modrinth project page URL from the slug,
// falling back to the project ID. Empty when neither is set.
func ProjectURL(project *model.ModrinthProject) string {
	slug := project.Slug
	if slug == "" {
		slug = project.ID
	}
	if slug == "" {
		return ""
	}
	return modrinthModURL + slug
}

// CategoryIndex collects the distinct category labels across all records in
// first-appearance order.
func CategoryIndex(records []model.Record) []string {
	seen := make(map[string]bool)
	var index []string
	for _, rec := range records {
		for _, c := range rec.Categories {
			if seen[c] {
				continue
			}
			seen[c] = true
			index = append(index, c)
		}
	}
	return index
}

// displayName picks the report name for a mod: project title, then the
// launcher's mod name, then the file name.
func displayName(mod model.Mod) string {
	if p := mod.ModrinthProject; p != nil && p.Title != "" {
		return p.Title
	}
	if mod.Name != "" {
		return mod.Name
	}
	return mod.File
}

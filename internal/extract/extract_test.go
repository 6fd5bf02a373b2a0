package extract

import (
	"reflect"
	"testing"

	"github.com/BraianAzcune/Minecraft-Mod-Excel-Reporter-Modrinth/internal/model"
)

func trustedMod() model.Mod {
	return model.Mod{
		Name: "sodium",
		File: "sodium-fabric-0.6.jar",
		ModrinthProject: &model.ModrinthProject{
			ID:          "AANobbMI",
			Slug:        "sodium",
			Title:       "Sodium",
			Description: "Perf mod",
			Body:        "Long body text",
			Categories:  []string{"Tech", "Magic"},
			Updated:     "2024-01-01T00:00:00Z",
		},
	}
}

func TestNormalize_WithProject(t *testing.T) {
	rec := Normalize(trustedMod())

	if rec.ModName != "Sodium" {
		t.Errorf("ModName = %q, want Sodium", rec.ModName)
	}
	if rec.Description != "Perf mod" {
		t.Errorf("Description = %q, want 'Perf mod'", rec.Description)
	}
	if rec.Detail != "Long body text" {
		t.Errorf("Detail = %q, want 'Long body text'", rec.Detail)
	}
	if want := []string{"Tech", "Magic"}; !reflect.DeepEqual(rec.Categories, want) {
		t.Errorf("Categories = %v, want %v", rec.Categories, want)
	}
	if rec.LinkURL != "https://modrinth.com/mod/sodium" {
		t.Errorf("LinkURL = %q, want https://modrinth.com/mod/sodium", rec.LinkURL)
	}
	if rec.LinkText != "Modrinth" {
		t.Errorf("LinkText = %q, want Modrinth", rec.LinkText)
	}
	if rec.FileName != "sodium-fabric-0.6.jar" {
		t.Errorf("FileName = %q, want sodium-fabric-0.6.jar", rec.FileName)
	}
	if rec.UpdatedAt != "2024-01-01T00:00:00Z" {
		t.Errorf("UpdatedAt = %q, want the raw updated string", rec.UpdatedAt)
	}
}

func TestNormalize_WithoutProject(t *testing.T) {
	rec := Normalize(model.Mod{File: "mystery.jar"})

	if rec.ModName != "mystery.jar" {
		t.Errorf("ModName = %q, want mystery.jar", rec.ModName)
	}
	if rec.Description != "No Modrinth source available (untrusted source)" {
		t.Errorf("Description = %q, want the untrusted-source sentinel", rec.Description)
	}
	if rec.Detail != "" {
		t.Errorf("Detail = %q, want empty", rec.Detail)
	}
	if len(rec.Categories) != 0 {
		t.Errorf("Categories = %v, want empty", rec.Categories)
	}
	if rec.LinkURL != "" {
		t.Errorf("LinkURL = %q, want empty", rec.LinkURL)
	}
	if rec.LinkText != "No Modrinth" {
		t.Errorf("LinkText = %q, want 'No Modrinth'", rec.LinkText)
	}
	if rec.UpdatedAt != "" {
		t.Errorf("UpdatedAt = %q, want empty", rec.UpdatedAt)
	}
}

func TestNormalize_NameFallbackChain(t *testing.T) {
	tests := []struct {
		name string
		mod  model.Mod
		want string
	}{
		{"title wins", trustedMod(), "Sodium"},
		{"mod name when no title", model.Mod{
			Name:            "lithium",
			File:            "lithium.jar",
			ModrinthProject: &model.ModrinthProject{Slug: "lithium"},
		}, "lithium"},
		{"file when nothing else", model.Mod{File: "unknown.jar"}, "unknown.jar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.mod).ModName; got != tt.want {
				t.Errorf("ModName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalize_EmptyCategories(t *testing.T) {
	mod := trustedMod()
	mod.ModrinthProject.Categories = nil
	if rec := Normalize(mod); len(rec.Categories) != 0 {
		t.Errorf("Categories = %v, want empty", rec.Categories)
	}

	// Empty labels are skipped, not written as empty strings.
	mod.ModrinthProject.Categories = []string{"", "Tech", ""}
	rec := Normalize(mod)
	if want := []string{"Tech"}; !reflect.DeepEqual(rec.Categories, want) {
		t.Errorf("Categories = %v, want %v", rec.Categories, want)
	}
}

func TestProjectURL(t *testing.T) {
	tests := []struct {
		name    string
		project model.ModrinthProject
		want    string
	}{
		{"slug preferred", model.ModrinthProject{Slug: "sodium", ID: "AANobbMI"}, "https://modrinth.com/mod/sodium"},
		{"id fallback", model.ModrinthProject{ID: "AANobbMI"}, "https://modrinth.com/mod/AANobbMI"},
		{"neither", model.ModrinthProject{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ProjectURL(&tt.project); got != tt.want {
				t.Errorf("ProjectURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalize_ProjectWithoutSlugOrID(t *testing.T) {
	rec := Normalize(model.Mod{
		File:            "local.jar",
		ModrinthProject: &model.ModrinthProject{Title: "Local Build"},
	})
	if rec.LinkURL != "" {
		t.Errorf("LinkURL = %q, want empty", rec.LinkURL)
	}
	if rec.LinkText != "" {
		t.Errorf("LinkText = %q, want empty when project has no slug or id", rec.LinkText)
	}
}

func TestNormalizeAll_Totality(t *testing.T) {
	mods := []model.Mod{
		trustedMod(),
		{File: "mystery.jar"},
		{File: "another.jar"},
	}
	records := NormalizeAll(mods)
	if len(records) != len(mods) {
		t.Fatalf("got %d records, want %d", len(records), len(mods))
	}
	for i, rec := range records {
		if rec.FileName != mods[i].File {
			t.Errorf("record %d: FileName = %q, want %q", i, rec.FileName, mods[i].File)
		}
	}
}

func TestCategoryIndex(t *testing.T) {
	records := []model.Record{
		{Categories: []string{"Tech", "Magic"}},
		{Categories: []string{"Tech"}},
		{},
		{Categories: []string{"Storage", "Magic"}},
	}
	got := CategoryIndex(records)
	want := []string{"Tech", "Magic", "Storage"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryIndex = %v, want %v", got, want)
	}
}

func TestCategoryIndex_Empty(t *testing.T) {
	if got := CategoryIndex(nil); got != nil {
		t.Errorf("CategoryIndex(nil) = %v, want nil", got)
	}
}

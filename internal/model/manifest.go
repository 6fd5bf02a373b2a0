package model

// Instance is the root of an ATLauncher instance.json manifest.
// Fields not needed for the report are ignored during decoding.
type Instance struct {
	Launcher Launcher `json:"launcher"`
}

// Launcher holds the modpack version and the installed mod list.
type Launcher struct {
	Version string `json:"version"`
	Mods    []Mod  `json:"mods"`
}

// Mod is one installed mod as recorded by the launcher.
type Mod struct {
	Name string `json:"name"`
	File string `json:"file"`

	// ModrinthProject is the launcher's snapshot of the mod's Modrinth
	// project metadata. Nil when the mod was installed from an untrusted
	// source (manual download, CurseForge-only, etc.).
	ModrinthProject *ModrinthProject `json:"modrinthProject"`
}

// ModrinthProject mirrors the subset of Modrinth project metadata that the
// launcher embeds per mod.
type ModrinthProject struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	Categories  []string `json:"categories"`
	Updated     string   `json:"updated"`
}

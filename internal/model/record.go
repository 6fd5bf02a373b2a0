package model

// Record is the normalized report row derived from one Mod. Every field is
// always populated, either with real Modrinth metadata or with a defined
// fallback value, so downstream code never checks for missing data.
type Record struct {
	ModName     string
	Description string
	Detail      string
	Categories  []string // kept as a list; joined with ";" only at write time
	LinkURL     string   // empty when there is no Modrinth source
	LinkText    string
	FileName    string
	UpdatedAt   string
}

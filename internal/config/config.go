package config

import (
	"os"
	"strconv"
)

// Config holds all reporter configuration.
type Config struct {
	Report   ReportConfig
	LogLevel string // "debug", "info", "warn", "error"
}

// ReportConfig holds workbook layout settings.
type ReportConfig struct {
	SheetName        string
	CategoriesColumn int // 1-based column of the categories side panel
	RowHeight        float64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Report: ReportConfig{
			SheetName:        getenv("MODREPORT_SHEET_NAME", "Mods"),
			CategoriesColumn: getenvInt("MODREPORT_CATEGORIES_COLUMN", 11),
			RowHeight:        getenvFloat("MODREPORT_ROW_HEIGHT", 15),
		},
		LogLevel: getenv("MODREPORT_LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return fallback
	}
	return f
}

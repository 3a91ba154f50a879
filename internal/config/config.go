// Package config reads wtt's configuration from the environment:
//
//	WTT_PATH_DATABASE  path to the JSON database file (default "db.json")
//	WTT_NOTE_WIDTH     note column width in the list view (default 40)
//	WTT_DEBUG          enable debug logging on stderr
package config

import "github.com/spf13/viper"

const (
	// DefaultDatabasePath is the backing file used when WTT_PATH_DATABASE
	// is unset, relative to the working directory.
	DefaultDatabasePath = "db.json"
	// DefaultNoteWidth is the display width notes are wrapped to in the
	// session table.
	DefaultNoteWidth = 40
)

// Config holds the resolved settings for one invocation.
type Config struct {
	DatabasePath string
	NoteWidth    int
	Debug        bool
}

// Load resolves the configuration from environment variables, falling back
// to the built-in defaults.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("wtt")
	v.AutomaticEnv()
	v.SetDefault("path_database", DefaultDatabasePath)
	v.SetDefault("note_width", DefaultNoteWidth)
	v.SetDefault("debug", false)

	cfg := Config{
		DatabasePath: v.GetString("path_database"),
		NoteWidth:    v.GetInt("note_width"),
		Debug:        v.GetBool("debug"),
	}
	if cfg.NoteWidth <= 0 {
		cfg.NoteWidth = DefaultNoteWidth
	}
	return cfg
}

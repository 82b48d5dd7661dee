// Package config provides YAML-based configuration for the spider
// platform: scoring constants, game defaults, and file locations.
package config

// Config is the root configuration document.
type Config struct {
	Scoring Scoring      `yaml:"scoring"`
	Game    GameDefaults `yaml:"game"`
	Paths   Paths        `yaml:"paths"`
}

// Scoring holds the score constants. The engine treats these as
// configuration, never as literals.
type Scoring struct {
	StartingScore   int `yaml:"starting_score"`
	MovePenalty     int `yaml:"move_penalty"`
	CompletionBonus int `yaml:"completion_bonus"`
}

// GameDefaults selects the variant used when flags don't say otherwise.
type GameDefaults struct {
	Suits       int  `yaml:"suits"` // 1, 2 or 4
	IncludeAces bool `yaml:"include_aces"`
}

// Paths locates the results database and the saved-game file.
type Paths struct {
	Database string `yaml:"database"`
	SaveFile string `yaml:"save_file"`
}

// Default returns the hardcoded fallback configuration. It mirrors the
// embedded YAML and is used only if that fails to parse.
func Default() Config {
	return Config{
		Scoring: Scoring{
			StartingScore:   500,
			MovePenalty:     1,
			CompletionBonus: 100,
		},
		Game: GameDefaults{
			Suits:       1,
			IncludeAces: true,
		},
		Paths: Paths{
			Database: "~/.spider/results.db",
			SaveFile: "~/.spider/saved.json",
		},
	}
}

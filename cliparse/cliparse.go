package cliparse

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string
	StatePath  string
	NoColor    bool
}

// DefaultAPIBaseURL is used when neither the flag nor API_URL is set.
const DefaultAPIBaseURL = "http://localhost:3000"

// ParseFlags resolves configuration from flags, falling back to
// environment variables (a .env file is loaded first when present).
// The returned remainder is the subcommand and its arguments.
func ParseFlags(args []string) (Config, []string, error) {
	// Missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("urban-services", flag.ContinueOnError)
	fs.StringVar(&cfg.APIBaseURL, "a", "", "API base URL")
	fs.StringVar(&cfg.StatePath, "s", "", "State file path")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	// Fall back to environment variables
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = os.Getenv("API_URL")
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}

	if cfg.StatePath == "" {
		cfg.StatePath = os.Getenv("STATE_PATH")
	}
	if cfg.StatePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		cfg.StatePath = filepath.Join(dir, "urban-services", "state.db")
	}

	if !cfg.NoColor && os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	return cfg, fs.Args(), nil
}

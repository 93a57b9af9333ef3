// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config plus the remaining arguments (subcommand
and its own flags):

	cfg, rest, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - APIBaseURL: base URL of the service-request API
    (default: http://localhost:3000)
  - StatePath: location of the local state file
    (default: <user config dir>/urban-services/state.db)
  - NoColor: disable ANSI colors in list output

# CLI Flags

	-a          API base URL
	-s          State file path
	--no-color  Disable colored output

# Environment Variables

Flags fall back to environment variables. A .env file in the working
directory is loaded first when present (godotenv).

	API_URL    → -a
	STATE_PATH → -s
	NO_COLOR   → --no-color (any non-empty value)

CLI flags take precedence over environment variables.
*/
package cliparse

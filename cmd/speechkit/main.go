package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/skillsenselab/speechkit/cli"
	"github.com/skillsenselab/speechkit/logger"
	"github.com/skillsenselab/speechkit/version"
)

func main() {
	// Load environment variables from .env files before parsing flags so
	// env-tagged flags see them.
	envFiles := []string{".env", "speechkit.env"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		envFiles = append(envFiles, filepath.Join(homeDir, ".config/speechkit.env"))
	}
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				logger.Warn("failed to load env file", map[string]interface{}{
					"file":  envFile,
					"error": err.Error(),
				})
			}
		}
	}

	ctx := kong.Parse(&cli.CLI,
		kong.Name("speechkit"),
		kong.Description("Speaker-attributed audio transcription.\n\nVersion: ${version}"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version.Short(),
		},
	)

	if err := ctx.Run(); err != nil {
		logger.Fatal("command failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

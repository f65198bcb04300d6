package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/somma-dev/somma/internal/commands"
)

func main() {
	// Optional .env for local overrides (credentials paths etc.).
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

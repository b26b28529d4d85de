package main

import (
	"github.com/joho/godotenv"

	"github.com/devbush/clipcast/internal/adapters/cli"
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	cli.Execute()
}

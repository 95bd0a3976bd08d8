package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/resumebase/visitcount/constants"
)

func main() {
	// Load .env as early as possible!
	_ = godotenv.Load()

	// Inside Lambda there is no CLI; hand control straight to the runtime.
	if os.Getenv(constants.EnvLambdaRuntime) != "" {
		runLambda()
		return
	}

	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

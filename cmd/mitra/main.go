// Package main provides the entry point for the mitra backend.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mitra",
	Short: "SkillPath Mitra backend",
	Long:  "SkillPath Mitra generates NSQF-aligned learning paths, mock interviews, and a companion voice for Indian learners via the Gemini API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

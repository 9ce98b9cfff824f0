package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillpath/mitra/internal/config"
	"github.com/skillpath/mitra/internal/llm"
	"github.com/skillpath/mitra/internal/observability"
	"github.com/skillpath/mitra/internal/pathgen"
	"github.com/skillpath/mitra/internal/types"
)

var (
	generateProfilePath string
	generateConsent     bool
	generateVerbose     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a learning path from a profile JSON file",
	Long:  `Run one path generation without the server: read a learner profile from a JSON file and print the validated learning path to stdout.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateProfilePath, "profile", "", "Path to learner profile JSON (required)")
	generateCmd.Flags().BoolVar(&generateConsent, "consent", false, "Learner consents to sharing personal identifiers with the model")
	generateCmd.Flags().BoolVar(&generateVerbose, "verbose", false, "Print formatted summaries alongside the JSON output")
	_ = generateCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(generateProfilePath)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	var profile types.LearnerProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	cfg := config.Load()
	gateway := llm.NewGateway(llm.Options{
		TextModel:      cfg.TextModel,
		TTSModel:       cfg.TTSModel,
		VoiceName:      cfg.VoiceName,
		RequestTimeout: cfg.RequestTimeout,
	}, llm.NewKeyPool(cfg.APIKeys))

	svc := pathgen.NewService(gateway)
	path, err := svc.GeneratePath(context.Background(), pathgen.GenerateRequest{
		Profile:        profile,
		ConsentToShare: generateConsent,
	})
	if err != nil {
		return err
	}

	if generateVerbose {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintProfile(&profile)
		printer.PrintLearningPath(path)
		printer.PrintLabourMarket(&path.LabourMarketSignals)
	}

	out, err := json.MarshalIndent(path, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode learning path: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

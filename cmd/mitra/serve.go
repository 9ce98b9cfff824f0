package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillpath/mitra/internal/config"
	"github.com/skillpath/mitra/internal/llm"
	"github.com/skillpath/mitra/internal/server"
	"github.com/skillpath/mitra/internal/session"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the learning-path, interview, and speech endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Load()
	if servePort != 0 {
		cfg.Port = servePort
	}

	gateway := llm.NewGateway(llm.Options{
		TextModel:      cfg.TextModel,
		TTSModel:       cfg.TTSModel,
		VoiceName:      cfg.VoiceName,
		RequestTimeout: cfg.RequestTimeout,
	}, llm.NewKeyPool(cfg.APIKeys))

	srv, err := server.New(server.Config{
		Port:     cfg.Port,
		Gateway:  gateway,
		Sessions: session.NewMemoryStore(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

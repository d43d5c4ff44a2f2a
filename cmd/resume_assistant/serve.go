package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chhaviambor/resume-improvement-assistant/internal/pipeline"
	"github.com/chhaviambor/resume-improvement-assistant/internal/server"
)

var (
	servePort   int
	serveSkills string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveSkills, "skills", "", "Path to skill vocabulary JSON file (defaults to built-in vocabulary)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	vocab, err := loadVocabulary(serveSkills)
	if err != nil {
		return err
	}

	analyzer := pipeline.New(vocab, pipeline.DefaultOptions())

	srv, err := server.New(server.Config{Port: servePort}, analyzer)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

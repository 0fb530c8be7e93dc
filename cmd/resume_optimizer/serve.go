package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the optimization HTTP server",
	Long:  "Start an HTTP server exposing the optimization pipeline as a JSON API.",
	RunE:  runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	srv, err := server.New(context.Background(), server.Config{
		Port:   servePort,
		APIKey: apiKey,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	fmt.Printf("Listening on :%d\n", servePort)
	return srv.Start()
}

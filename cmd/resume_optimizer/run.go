package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/ingestion"
	"github.com/jonathan/resume-optimizer/internal/pipeline"
	"github.com/jonathan/resume-optimizer/internal/rewriting"
	"github.com/jonathan/resume-optimizer/internal/types"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full resume optimization pipeline end-to-end",
	Long: `Orchestrates the entire optimization process: job ingestion -> keyword extraction -> section location -> project ranking -> rewriting -> document reconstruction.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runResume      string
	runDocx        string
	runJob         string
	runJobURL      string
	runLibrary     string
	runOutput      string
	runTopProjects int
	runAPIKey      string
	runUseBrowser  bool
	runVerbose     bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVarP(&runResume, "resume", "r", "", "Path to structured resume document JSON (mutually exclusive with --docx)")
	runCommand.Flags().StringVar(&runDocx, "docx", "", "Path to a .docx resume to import (mutually exclusive with --resume)")
	runCommand.Flags().StringVarP(&runJob, "job", "j", "", "Path to job posting text file (mutually exclusive with --job-url)")
	runCommand.Flags().StringVar(&runJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	runCommand.Flags().StringVarP(&runLibrary, "library", "l", "", "Path to project library file (.txt blocks or .json)")
	runCommand.Flags().StringVarP(&runOutput, "out", "o", "", "Path for the optimization result JSON")
	runCommand.Flags().IntVar(&runTopProjects, "top-projects", 0, "Number of library projects to select (default 3)")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := resolveRunConfig(cmd)
	if err != nil {
		return err
	}

	// Load the resume document.
	var doc *types.Document
	if cfg.Docx != "" {
		doc, err = ingestion.ImportDocx(cfg.Docx)
		if err != nil {
			return fmt.Errorf("failed to import docx: %w", err)
		}
	} else {
		doc, err = loadDocument(cfg.Resume)
		if err != nil {
			return err
		}
	}

	// Ingest the job posting.
	var jobText string
	if cfg.JobURL != "" {
		jobText, _, err = ingestion.IngestFromURL(ctx, cfg.JobURL, cfg.UseBrowser, cfg.Verbose)
		if err != nil {
			return fmt.Errorf("job ingestion from URL failed: %w", err)
		}
	} else {
		jobText, _, err = ingestion.IngestFromFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("job ingestion from file failed: %w", err)
		}
	}

	// Load the project library when provided.
	var projects []types.ProjectEntry
	if cfg.Library != "" {
		projects, err = loadLibrary(cfg.Library)
		if err != nil {
			return fmt.Errorf("failed to load project library: %w", err)
		}
	}

	gen, err := rewriting.NewGeminiGenerator(ctx, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}
	defer func() { _ = gen.Close() }()

	result, err := pipeline.Run(ctx, &types.OptimizationRequest{
		Document:    doc,
		JobText:     jobText,
		Library:     projects,
		TopProjects: cfg.TopProjects,
	}, pipeline.Options{Generator: gen, Verbose: cfg.Verbose})
	if err != nil {
		return err
	}

	if err := writeJSONArtifact(cfg.Output, result); err != nil {
		return err
	}

	fmt.Printf("\nOptimization complete (run %s)\n", result.RunID)
	fmt.Printf("Keyword match: %.2f -> %.2f\n", result.BaselineScore, result.OptimizedScore)
	for _, w := range result.Warnings() {
		fmt.Printf("Warning: %s\n", w)
	}
	fmt.Printf("Result: %s\n", cfg.Output)

	return nil
}

// resolveRunConfig merges the config file, explicit flags, and defaults.
func resolveRunConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		if runVerbose {
			fmt.Printf("Loaded config from: %s\n", runConfigPath)
		}
	}

	// Command-line args take priority; only override when explicitly set.
	if cmd.Flags().Changed("resume") {
		cfg.Resume = runResume
	}
	if cmd.Flags().Changed("docx") {
		cfg.Docx = runDocx
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = runJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = runJobURL
	}
	if cmd.Flags().Changed("library") {
		cfg.Library = runLibrary
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = runOutput
	}
	if cmd.Flags().Changed("top-projects") {
		cfg.TopProjects = runTopProjects
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	cfg = cfg.MergeWithDefaults(config.Config{Output: "out/optimized_resume.json"})

	// Validate required fields after merging.
	if cfg.Resume == "" && cfg.Docx == "" {
		return cfg, fmt.Errorf("either --resume or --docx must be provided (via flag or config)")
	}
	if cfg.Resume != "" && cfg.Docx != "" {
		return cfg, fmt.Errorf("--resume and --docx are mutually exclusive; provide only one")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return cfg, fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return cfg, fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return cfg, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	return cfg, nil
}

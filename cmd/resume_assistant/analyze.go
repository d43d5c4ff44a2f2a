package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chhaviambor/resume-improvement-assistant/internal/config"
	"github.com/chhaviambor/resume-improvement-assistant/internal/fetch"
	"github.com/chhaviambor/resume-improvement-assistant/internal/ingestion"
	"github.com/chhaviambor/resume-improvement-assistant/internal/matching"
	"github.com/chhaviambor/resume-improvement-assistant/internal/observability"
	"github.com/chhaviambor/resume-improvement-assistant/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long: `Runs the full analysis pipeline: keyword extraction, fuzzy skill matching, TF-IDF similarity, ATS scoring and an extractive summary.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath       string
	analyzeResume           string
	analyzeJob              string
	analyzeJobURL           string
	analyzeSkills           string
	analyzeFuzzyThreshold   int
	analyzeCrossThreshold   int
	analyzeSummarySentences int
	analyzeVerbose          bool
	analyzeDemo             bool
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (.txt or .pdf)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL to fetch job description from (mutually exclusive with --job)")
	analyzeCmd.Flags().StringVar(&analyzeSkills, "skills", "", "Path to skill vocabulary JSON file (defaults to built-in vocabulary)")
	analyzeCmd.Flags().IntVar(&analyzeFuzzyThreshold, "fuzzy-threshold", 0, "Minimum confidence for skill matches, 0-100 (default 72)")
	analyzeCmd.Flags().IntVar(&analyzeCrossThreshold, "cross-threshold", 0, "Minimum confidence for job keyword cross-matches, 0-100 (default 75)")
	analyzeCmd.Flags().IntVar(&analyzeSummarySentences, "summary-sentences", 0, "Number of sentences in the extractive summary (default 2)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print extracted job keywords and all detected skills")
	analyzeCmd.Flags().BoolVar(&analyzeDemo, "demo", false, "Run against built-in sample resume and job description")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = analyzeJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = analyzeJobURL
	}
	if cmd.Flags().Changed("skills") {
		cfg.Skills = analyzeSkills
	}
	if cmd.Flags().Changed("fuzzy-threshold") {
		cfg.FuzzyThreshold = analyzeFuzzyThreshold
	}
	if cmd.Flags().Changed("cross-threshold") {
		cfg.CrossThreshold = analyzeCrossThreshold
	}
	if cmd.Flags().Changed("summary-sentences") {
		cfg.SummarySentences = analyzeSummarySentences
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Step 3: Apply defaults for unset values
	defaultOpts := pipeline.DefaultOptions()
	cfg = cfg.MergeWithDefaults(config.Config{
		FuzzyThreshold:   defaultOpts.FuzzyThreshold,
		CrossThreshold:   defaultOpts.CrossThreshold,
		SummarySentences: defaultOpts.SummarySentences,
	})

	// Step 4: Resolve input texts
	resumeText, jobText, err := resolveInputs(ctx, cfg)
	if err != nil {
		return err
	}

	// Step 5: Load the skill vocabulary
	vocab, err := loadVocabulary(cfg.Skills)
	if err != nil {
		return err
	}

	analyzer := pipeline.New(vocab, pipeline.Options{
		FuzzyThreshold:   cfg.FuzzyThreshold,
		CrossThreshold:   cfg.CrossThreshold,
		SummarySentences: cfg.SummarySentences,
	})

	report, err := analyzer.Analyze(ctx, resumeText, jobText)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintJobKeywords(report.JobKeywords)
	}
	printer.PrintReport(report)

	return nil
}

// resolveInputs loads the resume and job description texts from the
// configured sources. With --demo both come from built-in samples.
func resolveInputs(ctx context.Context, cfg config.Config) (string, string, error) {
	if analyzeDemo {
		return demoResume, demoJob, nil
	}

	if cfg.Resume == "" {
		return "", "", fmt.Errorf("--resume is required (via flag or config), or use --demo")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return "", "", fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return "", "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	resumeText, err := ingestion.ReadResume(cfg.Resume)
	if err != nil {
		return "", "", fmt.Errorf("failed to read resume: %w", err)
	}

	var jobText string
	if cfg.JobURL != "" {
		jobText, err = fetch.NewFetcher().JobDescription(ctx, cfg.JobURL)
		if err != nil {
			return "", "", fmt.Errorf("failed to fetch job description: %w", err)
		}
	} else {
		jobText, err = ingestion.ReadTextFile(cfg.Job)
		if err != nil {
			return "", "", fmt.Errorf("failed to read job description: %w", err)
		}
	}

	return resumeText, jobText, nil
}

// loadVocabulary loads the skill vocabulary from the given path, or
// the built-in vocabulary when no path is configured.
func loadVocabulary(path string) ([]string, error) {
	if path != "" {
		return matching.LoadVocabulary(path)
	}
	return matching.DefaultVocabulary()
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobfit/internal/ingest"
	"github.com/jonathan/jobfit/internal/observability"
	"github.com/jonathan/jobfit/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a job description",
	Long:  "Extract skills, requirements, responsibilities, experience level, keywords, and priority skills from a job description given as text, a file, or a URL.",
	RunE:  runAnalyze,
}

var (
	analyzeText    string
	analyzeFile    string
	analyzeURL     string
	analyzeLLM     bool
	analyzeJSON    bool
	analyzeSave    bool
	analyzeTitle   string
	analyzeCompany string
	analyzeBrowser bool
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "Job description text")
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to a job description text file")
	analyzeCmd.Flags().StringVarP(&analyzeURL, "url", "u", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().BoolVar(&analyzeLLM, "llm", false, "Use the LLM-backed engine")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the raw JobAnalysis JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the analysis to the database")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Job title for the saved analysis")
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name for the saved analysis")
	analyzeCmd.Flags().BoolVar(&analyzeBrowser, "browser", false, "Render JS-heavy pages with a headless browser when needed")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed fetch and extraction information")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	// Config file values serve as defaults for the input flags
	file := analyzeFile
	if file == "" {
		file = cfg.Job
	}
	urlStr := analyzeURL
	if urlStr == "" {
		urlStr = cfg.JobURL
	}

	sources := 0
	for _, s := range []string{analyzeText, file, urlStr} {
		if s != "" {
			sources++
		}
	}
	if sources == 0 {
		return fmt.Errorf("one of --text, --file, or --url must be provided")
	}
	if sources > 1 {
		return fmt.Errorf("--text, --file, and --url are mutually exclusive; provide only one")
	}

	ctx := cmd.Context()

	jobText := analyzeText
	switch {
	case file != "":
		jobText, _, err = ingest.FromFile(file)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	case urlStr != "":
		jobText, _, err = ingest.FromURL(ctx, urlStr, analyzeBrowser || cfg.UseBrowser, analyzeVerbose || cfg.Verbose)
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	eng, err := buildEngine(ctx, analyzeLLM, cfg)
	if err != nil {
		return err
	}
	defer closeEngine(eng)

	analysis, err := eng.Analyze(ctx, jobText)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeSave {
		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		record, err := st.SaveAnalysis(ctx, &store.SaveAnalysisInput{
			Title:    analyzeTitle,
			Company:  analyzeCompany,
			JobURL:   urlStr,
			JobText:  jobText,
			Analysis: analysis,
		})
		if err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Saved analysis %s\n", record.ID)
	}

	if analyzeJSON {
		out, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintAnalysis(analysis)
	return nil
}

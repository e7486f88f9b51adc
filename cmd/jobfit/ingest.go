package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobfit/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a job posting from a text file or URL",
	Long:  "Fetch or read a job posting, clean the text, and write the cleaned content with metadata into an output directory.",
	RunE:  runIngest,
}

var (
	ingestInput   string
	ingestURL     string
	ingestOut     string
	ingestBrowser bool
	ingestVerbose bool
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestInput, "input", "i", "", "Path to a text file containing the job posting")
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the job posting from")
	ingestCmd.Flags().StringVarP(&ingestOut, "out", "o", "", "Output directory (required)")
	ingestCmd.Flags().BoolVar(&ingestBrowser, "browser", false, "Render JS-heavy pages with a headless browser when needed")
	ingestCmd.Flags().BoolVarP(&ingestVerbose, "verbose", "v", false, "Print detailed fetch and extraction information")

	ingestCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if ingestInput == "" && ingestURL == "" {
		return fmt.Errorf("either --input or --url must be provided")
	}
	if ingestInput != "" && ingestURL != "" {
		return fmt.Errorf("--input and --url are mutually exclusive; provide only one")
	}

	var (
		cleanedText string
		metadata    *ingest.Metadata
		err         error
	)

	if ingestInput != "" {
		cleanedText, metadata, err = ingest.FromFile(ingestInput)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	} else {
		cleanedText, metadata, err = ingest.FromURL(cmd.Context(), ingestURL, ingestBrowser, ingestVerbose)
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	if err := ingest.WriteOutput(ingestOut, cleanedText, metadata); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully ingested job posting\n")
	fmt.Fprintf(os.Stdout, "Cleaned text: %s/job_posting.cleaned.txt\n", ingestOut)
	fmt.Fprintf(os.Stdout, "Metadata: %s/job_posting.meta.json\n", ingestOut)

	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobfit/internal/observability"
	"github.com/jonathan/jobfit/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score candidate skills against a job analysis",
	Long:  "Compute the 0-100 match score between a comma-separated candidate skill list and a job analysis, loaded from a JSON file or from the database by ID.",
	RunE:  runScore,
}

var (
	scoreSkills   string
	scoreAnalysis string
	scoreID       string
	scoreLLM      bool
	scoreJSON     bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreSkills, "skills", "s", "", "Comma-separated candidate skills")
	scoreCmd.Flags().StringVarP(&scoreAnalysis, "analysis", "a", "", "Path to a JobAnalysis JSON file")
	scoreCmd.Flags().StringVar(&scoreID, "id", "", "ID of a stored analysis")
	scoreCmd.Flags().BoolVar(&scoreLLM, "llm", false, "Use the LLM-backed engine")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the score as JSON")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	rawSkills := scoreSkills
	if rawSkills == "" {
		rawSkills = cfg.Skills
	}
	if rawSkills == "" {
		return fmt.Errorf("--skills is required")
	}

	if scoreAnalysis == "" && scoreID == "" {
		return fmt.Errorf("either --analysis or --id must be provided")
	}
	if scoreAnalysis != "" && scoreID != "" {
		return fmt.Errorf("--analysis and --id are mutually exclusive; provide only one")
	}

	ctx := cmd.Context()

	var analysis *types.JobAnalysis
	if scoreAnalysis != "" {
		data, err := os.ReadFile(scoreAnalysis)
		if err != nil {
			return fmt.Errorf("failed to read analysis file: %w", err)
		}
		analysis = &types.JobAnalysis{}
		if err := json.Unmarshal(data, analysis); err != nil {
			return fmt.Errorf("failed to parse analysis JSON: %w", err)
		}
	} else {
		analysisID, err := uuid.Parse(scoreID)
		if err != nil {
			return fmt.Errorf("invalid analysis ID %q: %w", scoreID, err)
		}

		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		record, err := st.GetAnalysis(ctx, analysisID)
		if err != nil {
			return fmt.Errorf("failed to load analysis: %w", err)
		}
		if record == nil {
			return fmt.Errorf("analysis %s not found", analysisID)
		}
		analysis = record.Analysis
	}

	eng, err := buildEngine(ctx, scoreLLM, cfg)
	if err != nil {
		return err
	}
	defer closeEngine(eng)

	skills := splitSkills(rawSkills)
	score, err := eng.Score(ctx, skills, analysis)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	if scoreJSON {
		out, err := json.Marshal(map[string]float64{"score": score})
		if err != nil {
			return fmt.Errorf("failed to marshal score: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintScore(score, skills)
	return nil
}

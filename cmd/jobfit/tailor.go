package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobfit/internal/observability"
	"github.com/jonathan/jobfit/internal/tailor"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Produce a tailoring plan for a profile and a stored analysis",
	Long:  "Reorder a candidate's experiences and skills against a stored job analysis and draft a summary line. With --llm, the plan is enriched with model-generated recommendations.",
	RunE:  runTailor,
}

var (
	tailorProfileID  string
	tailorAnalysisID string
	tailorLLM        bool
	tailorJSON       bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorProfileID, "profile", "p", "", "ID of the candidate profile (required)")
	tailorCmd.Flags().StringVar(&tailorAnalysisID, "id", "", "ID of the stored analysis (required)")
	tailorCmd.Flags().BoolVar(&tailorLLM, "llm", false, "Add LLM-generated tailoring recommendations")
	tailorCmd.Flags().BoolVar(&tailorJSON, "json", false, "Print the plan as JSON")

	tailorCmd.MarkFlagRequired("profile")
	tailorCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	cfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	profileID, err := uuid.Parse(tailorProfileID)
	if err != nil {
		return fmt.Errorf("invalid profile ID %q: %w", tailorProfileID, err)
	}
	analysisID, err := uuid.Parse(tailorAnalysisID)
	if err != nil {
		return fmt.Errorf("invalid analysis ID %q: %w", tailorAnalysisID, err)
	}

	ctx := cmd.Context()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.GetProfile(ctx, profileID)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		return fmt.Errorf("profile %s not found", profileID)
	}

	record, err := st.GetAnalysis(ctx, analysisID)
	if err != nil {
		return fmt.Errorf("failed to load analysis: %w", err)
	}
	if record == nil {
		return fmt.Errorf("analysis %s not found", analysisID)
	}

	experiences, err := st.ListExperiences(ctx, profile.ID)
	if err != nil {
		return fmt.Errorf("failed to load experiences: %w", err)
	}

	plan := tailor.Plan(profile, experiences, record.Analysis)

	if tailorLLM {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		recs, err := tailor.Recommend(ctx, profile, experiences, record.Analysis, apiKey)
		if err != nil {
			// The deterministic plan stands on its own
			log.Printf("LLM recommendations unavailable: %v", err)
		} else {
			plan.Recommendations = recs
		}
	}

	if tailorJSON {
		out, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal plan: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintTailoringPlan(plan)
	return nil
}

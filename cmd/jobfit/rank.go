package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/jobfit/internal/observability"
	"github.com/jonathan/jobfit/internal/pipeline"
	"github.com/jonathan/jobfit/internal/store"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank stored analyses by match score",
	Long:  "Score a candidate skill set against every stored job analysis concurrently and list the results by score descending.",
	RunE:  runRank,
}

var (
	rankSkills      string
	rankProfileID   string
	rankLimit       int
	rankConcurrency int
	rankLLM         bool
	rankJSON        bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankSkills, "skills", "s", "", "Comma-separated candidate skills")
	rankCmd.Flags().StringVarP(&rankProfileID, "profile", "p", "", "ID of a stored profile to take skills from")
	rankCmd.Flags().IntVar(&rankLimit, "limit", 0, "Maximum number of stored analyses to rank (0 = all)")
	rankCmd.Flags().IntVar(&rankConcurrency, "concurrency", 0, "Maximum concurrent scoring calls (0 = default)")
	rankCmd.Flags().BoolVar(&rankLLM, "llm", false, "Use the LLM-backed engine")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print the ranking as JSON")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	cfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	rawSkills := rankSkills
	if rawSkills == "" && rankProfileID == "" {
		rawSkills = cfg.Skills
	}
	if rawSkills == "" && rankProfileID == "" {
		return fmt.Errorf("either --skills or --profile must be provided")
	}
	if rawSkills != "" && rankProfileID != "" {
		return fmt.Errorf("--skills and --profile are mutually exclusive; provide only one")
	}

	ctx := cmd.Context()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	skills := splitSkills(rawSkills)
	if rankProfileID != "" {
		profileID, err := uuid.Parse(rankProfileID)
		if err != nil {
			return fmt.Errorf("invalid profile ID %q: %w", rankProfileID, err)
		}
		profile, err := st.GetProfile(ctx, profileID)
		if err != nil {
			return fmt.Errorf("failed to load profile: %w", err)
		}
		if profile == nil {
			return fmt.Errorf("profile %s not found", profileID)
		}
		skills = profile.SkillList()
	}

	analyses, err := st.ListAnalyses(ctx, store.AnalysisFilters{Limit: rankLimit})
	if err != nil {
		return fmt.Errorf("failed to list analyses: %w", err)
	}

	eng, err := buildEngine(ctx, rankLLM, cfg)
	if err != nil {
		return err
	}
	defer closeEngine(eng)

	ranked, err := pipeline.Rank(ctx, eng, skills, analyses, rankConcurrency)
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	if rankJSON {
		out, err := json.MarshalIndent(ranked, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal ranking: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintRanked(ranked)
	return nil
}

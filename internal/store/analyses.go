package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobfit/internal/types"
)

// maxPriorityTags is how many priority skills become search tags.
const maxPriorityTags = 5

// deriveTags builds the search tags for an analysis: the experience level
// plus the names of its top priority skills
func deriveTags(a *types.JobAnalysis) []string {
	tags := []string{string(types.ParseExperienceLevel(string(a.ExperienceLevel)))}
	return append(tags, a.TopPrioritySkills(maxPriorityTags)...)
}

// SaveAnalysis stores a new analysis with derived search metadata and
// returns the stored record
func (s *Store) SaveAnalysis(ctx context.Context, input *SaveAnalysisInput) (*AnalysisRecord, error) {
	if input.Analysis == nil {
		return nil, fmt.Errorf("analysis is required")
	}

	title := input.Title
	if title == "" {
		title = "Unknown Position"
	}
	company := input.Company
	if company == "" {
		company = "Unknown Company"
	}

	analysisJSON, err := json.Marshal(input.Analysis)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	tags := deriveTags(input.Analysis)
	tagsJSON, _ := json.Marshal(tags)

	rec := &AnalysisRecord{
		Title:           title,
		Company:         company,
		JobURL:          input.JobURL,
		JobText:         input.JobText,
		Analysis:        input.Analysis,
		Tags:            tags,
		SkillsCount:     len(input.Analysis.AllSkills()),
		ExperienceLevel: string(types.ParseExperienceLevel(string(input.Analysis.ExperienceLevel))),
	}

	err = s.pool.QueryRow(ctx,
		`INSERT INTO analyses (title, company, job_url, job_text, analysis, tags, skills_count, experience_level)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		title, company, input.JobURL, input.JobText, analysisJSON, tagsJSON,
		rec.SkillsCount, rec.ExperienceLevel,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	return rec, nil
}

// GetAnalysis retrieves a stored analysis by ID
func (s *Store) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	var analysisJSON, tagsJSON []byte

	err := s.pool.QueryRow(ctx,
		`SELECT id, title, company, job_url, job_text, analysis, tags,
		        skills_count, experience_level, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Title, &rec.Company, &rec.JobURL, &rec.JobText,
		&analysisJSON, &tagsJSON, &rec.SkillsCount, &rec.ExperienceLevel, &rec.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	// Parse JSONB fields
	if analysisJSON != nil {
		rec.Analysis = &types.JobAnalysis{}
		_ = json.Unmarshal(analysisJSON, rec.Analysis)
	}
	if tagsJSON != nil {
		_ = json.Unmarshal(tagsJSON, &rec.Tags)
	}

	return &rec, nil
}

// ListAnalyses retrieves stored analyses with optional filters, newest first
func (s *Store) ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]AnalysisRecord, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	query := `SELECT id, title, company, job_url, job_text, analysis, tags,
		       skills_count, experience_level, created_at
		FROM analyses WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Company != "" {
		query += fmt.Sprintf(" AND company ILIKE $%d", argNum)
		args = append(args, "%"+filters.Company+"%")
		argNum++
	}
	if filters.ExperienceLevel != "" {
		query += fmt.Sprintf(" AND experience_level = $%d", argNum)
		args = append(args, filters.ExperienceLevel)
		argNum++
	}
	if filters.Skill != "" {
		query += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(analysis->'skills'->'technical') skill
			WHERE LOWER(skill) = LOWER($%d)
			UNION
			SELECT 1 FROM jsonb_array_elements_text(analysis->'skills'->'soft') skill
			WHERE LOWER(skill) = LOWER($%d)
		)`, argNum, argNum)
		args = append(args, filters.Skill)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	return scanAnalysisRows(rows)
}

// SearchAnalyses finds analyses whose title, company, tags, or extracted
// skills contain the search term, case-insensitively
func (s *Store) SearchAnalyses(ctx context.Context, term string, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	pattern := "%" + term + "%"

	rows, err := s.pool.Query(ctx,
		`SELECT id, title, company, job_url, job_text, analysis, tags,
		        skills_count, experience_level, created_at
		 FROM analyses
		 WHERE title ILIKE $1 OR company ILIKE $1 OR tags::text ILIKE $1
		    OR EXISTS (SELECT 1 FROM jsonb_array_elements_text(analysis->'skills'->'technical') skill
		               WHERE skill ILIKE $1)
		    OR EXISTS (SELECT 1 FROM jsonb_array_elements_text(analysis->'skills'->'soft') skill
		               WHERE skill ILIKE $1)
		 ORDER BY created_at DESC
		 LIMIT $2`,
		pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search analyses: %w", err)
	}
	defer rows.Close()

	return scanAnalysisRows(rows)
}

// scanAnalysisRows collects analysis records from a result set
func scanAnalysisRows(rows pgx.Rows) ([]AnalysisRecord, error) {
	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		var analysisJSON, tagsJSON []byte
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Company, &rec.JobURL, &rec.JobText,
			&analysisJSON, &tagsJSON, &rec.SkillsCount, &rec.ExperienceLevel, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		if analysisJSON != nil {
			rec.Analysis = &types.JobAnalysis{}
			_ = json.Unmarshal(analysisJSON, rec.Analysis)
		}
		if tagsJSON != nil {
			_ = json.Unmarshal(tagsJSON, &rec.Tags)
		}
		records = append(records, rec)
	}
	return records, nil
}

// DeleteAnalysis removes a stored analysis, reporting whether a row was deleted
func (s *Store) DeleteAnalysis(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete analysis: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// Stats summarizes the stored analyses: totals, per-level counts, and the
// skills that recur most across them
func (s *Store) Stats(ctx context.Context) (*AnalysisStats, error) {
	stats := &AnalysisStats{ExperienceLevels: make(map[string]int)}

	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(DISTINCT company) FROM analyses`,
	).Scan(&stats.TotalAnalyses, &stats.UniqueCompanies)
	if err != nil {
		return nil, fmt.Errorf("failed to count analyses: %w", err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT experience_level, COUNT(*) FROM analyses GROUP BY experience_level`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count experience levels: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var level string
		var count int
		if err := rows.Scan(&level, &count); err != nil {
			return nil, fmt.Errorf("failed to scan level count: %w", err)
		}
		stats.ExperienceLevels[level] = count
	}

	rows, err = s.pool.Query(ctx,
		`SELECT skill, COUNT(*) AS mentions
		 FROM analyses,
		      LATERAL (
		          SELECT jsonb_array_elements_text(analysis->'skills'->'technical') AS skill
		          UNION ALL
		          SELECT jsonb_array_elements_text(analysis->'skills'->'soft')
		      ) extracted
		 GROUP BY skill
		 ORDER BY mentions DESC, skill
		 LIMIT 10`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to tally skills: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var tally SkillTally
		if err := rows.Scan(&tally.Skill, &tally.Count); err != nil {
			return nil, fmt.Errorf("failed to scan skill tally: %w", err)
		}
		stats.TopSkills = append(stats.TopSkills, tally)
	}

	rows, err = s.pool.Query(ctx,
		`SELECT DISTINCT company FROM analyses ORDER BY company LIMIT 20`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var company string
		if err := rows.Scan(&company); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		stats.Companies = append(stats.Companies, company)
	}

	return stats, nil
}

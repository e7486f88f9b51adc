package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/jobfit/internal/types"
)

// SaveProfile creates or updates a candidate profile keyed by email and
// replaces its experience entries
func (s *Store) SaveProfile(ctx context.Context, input *ProfileInput) (*types.Profile, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && rErr != pgx.ErrTxClosed {
			fmt.Printf("Rollback error: %v\n", rErr)
		}
	}()

	var p types.Profile
	err = tx.QueryRow(ctx,
		`INSERT INTO profiles (name, email, phone, summary, skills)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO UPDATE SET
		     name = $1,
		     phone = $3,
		     summary = $4,
		     skills = $5,
		     updated_at = NOW()
		 RETURNING id, name, email, phone, summary, skills, created_at, updated_at`,
		input.Name, input.Email, input.Phone, input.Summary, input.Skills,
	).Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Summary, &p.Skills, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	// Clear existing entries (for upsert)
	_, _ = tx.Exec(ctx, "DELETE FROM experiences WHERE profile_id = $1", p.ID)

	for i, exp := range input.Experiences {
		achievementsJSON, _ := json.Marshal(exp.Achievements)
		if achievementsJSON == nil {
			achievementsJSON = []byte("[]")
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO experiences (profile_id, title, company, start_date, end_date, description, achievements, ordinal)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			p.ID, exp.Title, exp.Company, exp.StartDate, exp.EndDate, exp.Description, achievementsJSON, i+1,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert experience: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &p, nil
}

// GetProfile retrieves a profile by ID
func (s *Store) GetProfile(ctx context.Context, id uuid.UUID) (*types.Profile, error) {
	var p types.Profile
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, email, phone, summary, skills, created_at, updated_at
		 FROM profiles WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Summary, &p.Skills, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &p, nil
}

// ListProfiles retrieves recent profiles
func (s *Store) ListProfiles(ctx context.Context, limit int) ([]types.Profile, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, email, phone, summary, skills, created_at, updated_at
		 FROM profiles ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []types.Profile
	for rows.Next() {
		var p types.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.Email, &p.Phone, &p.Summary, &p.Skills,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// ReplaceExperiences swaps a profile's experience entries for the given list
func (s *Store) ReplaceExperiences(ctx context.Context, profileID uuid.UUID, experiences []types.Experience) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rErr := tx.Rollback(ctx); rErr != nil && rErr != pgx.ErrTxClosed {
			fmt.Printf("Rollback error: %v\n", rErr)
		}
	}()

	_, err = tx.Exec(ctx, "DELETE FROM experiences WHERE profile_id = $1", profileID)
	if err != nil {
		return fmt.Errorf("failed to clear experiences: %w", err)
	}

	for i, exp := range experiences {
		achievementsJSON, _ := json.Marshal(exp.Achievements)
		if achievementsJSON == nil {
			achievementsJSON = []byte("[]")
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO experiences (profile_id, title, company, start_date, end_date, description, achievements, ordinal)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			profileID, exp.Title, exp.Company, exp.StartDate, exp.EndDate, exp.Description, achievementsJSON, i+1,
		)
		if err != nil {
			return fmt.Errorf("failed to insert experience: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListExperiences retrieves a profile's experience entries in order
func (s *Store) ListExperiences(ctx context.Context, profileID uuid.UUID) ([]types.Experience, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, profile_id, title, company, start_date, end_date, description, achievements
		 FROM experiences WHERE profile_id = $1 ORDER BY ordinal`,
		profileID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	var experiences []types.Experience
	for rows.Next() {
		var exp types.Experience
		var achievementsJSON []byte
		if err := rows.Scan(&exp.ID, &exp.ProfileID, &exp.Title, &exp.Company,
			&exp.StartDate, &exp.EndDate, &exp.Description, &achievementsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		if achievementsJSON != nil {
			_ = json.Unmarshal(achievementsJSON, &exp.Achievements)
		}
		experiences = append(experiences, exp)
	}
	return experiences, nil
}

// DeleteProfile removes a profile and its experiences (via cascade),
// reporting whether a row was deleted
func (s *Store) DeleteProfile(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.pool.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete profile: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

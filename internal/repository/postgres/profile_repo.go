package postgres

import (
	"context"
	"errors"

	"go-hackmate-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `
	id, user_id, COALESCE(bio, ''), skills, experience_level,
	github_url, linkedin_url, portfolio_url,
	COALESCE(location, ''), COALESCE(timezone, ''), preferred_roles,
	avatar_url, is_available, created_at, updated_at`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	var skills, roles []string
	err := row.Scan(
		&p.ID, &p.UserID, &p.Bio, pq.Array(&skills), &p.ExperienceLevel,
		&p.GithubURL, &p.LinkedinURL, &p.PortfolioURL,
		&p.Location, &p.Timezone, pq.Array(&roles),
		&p.AvatarURL, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Skills = domain.NewSkillSet(skills...)
	p.PreferredRoles = domain.NewSkillSet(roles...)
	return &p, nil
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT` + profileColumns + ` FROM profiles WHERE user_id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, bio, skills, experience_level, github_url, linkedin_url, portfolio_url,
		                      location, timezone, preferred_roles, is_available, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			bio = EXCLUDED.bio,
			skills = EXCLUDED.skills,
			experience_level = EXCLUDED.experience_level,
			github_url = EXCLUDED.github_url,
			linkedin_url = EXCLUDED.linkedin_url,
			portfolio_url = EXCLUDED.portfolio_url,
			location = EXCLUDED.location,
			timezone = EXCLUDED.timezone,
			preferred_roles = EXCLUDED.preferred_roles,
			is_available = EXCLUDED.is_available,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.Bio, pq.Array([]string(profile.Skills)), profile.ExperienceLevel,
		profile.GithubURL, profile.LinkedinURL, profile.PortfolioURL,
		profile.Location, profile.Timezone, pq.Array([]string(profile.PreferredRoles)), profile.IsAvailable,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepo) SetAvatarURL(ctx context.Context, userID, url string) error {
	tag, err := r.db.Exec(ctx, `UPDATE profiles SET avatar_url = $1, updated_at = NOW() WHERE user_id = $2`, url, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepo) FetchPool(ctx context.Context, excludeUserID string) ([]domain.Profile, error) {
	query := `SELECT` + profileColumns + ` FROM profiles WHERE user_id <> $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, excludeUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProfiles(rows)
}

func (r *profileRepo) FetchAll(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT` + profileColumns + ` FROM profiles ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProfiles(rows)
}

func collectProfiles(rows pgx.Rows) ([]domain.Profile, error) {
	profiles := make([]domain.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func (r *profileRepo) GetPreference(ctx context.Context, userID string) (*domain.MatchingPreference, error) {
	query := `
		SELECT user_id, preferred_team_size, preferred_roles, preferred_skills,
		       experience_level_preference, location_preference, created_at, updated_at
		FROM matching_preferences WHERE user_id = $1`

	var m domain.MatchingPreference
	var roles, skills, levels []string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&m.UserID, &m.PreferredTeamSize, pq.Array(&roles), pq.Array(&skills),
		pq.Array(&levels), &m.LocationPreference, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Absence of preferences is valid; matching degrades.
			return nil, nil
		}
		return nil, err
	}
	m.PreferredRoles = domain.NewSkillSet(roles...)
	m.PreferredSkills = domain.NewSkillSet(skills...)
	m.ExperienceLevelPreference = make([]domain.ExperienceLevel, 0, len(levels))
	for _, l := range levels {
		m.ExperienceLevelPreference = append(m.ExperienceLevelPreference, domain.ExperienceLevel(l))
	}
	return &m, nil
}

func (r *profileRepo) UpsertPreference(ctx context.Context, pref *domain.MatchingPreference) error {
	levels := make([]string, 0, len(pref.ExperienceLevelPreference))
	for _, l := range pref.ExperienceLevelPreference {
		levels = append(levels, string(l))
	}
	query := `
		INSERT INTO matching_preferences (user_id, preferred_team_size, preferred_roles, preferred_skills,
		                                  experience_level_preference, location_preference, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			preferred_team_size = EXCLUDED.preferred_team_size,
			preferred_roles = EXCLUDED.preferred_roles,
			preferred_skills = EXCLUDED.preferred_skills,
			experience_level_preference = EXCLUDED.experience_level_preference,
			location_preference = EXCLUDED.location_preference,
			updated_at = NOW()
		RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		pref.UserID, pref.PreferredTeamSize, pq.Array([]string(pref.PreferredRoles)),
		pq.Array([]string(pref.PreferredSkills)), pq.Array(levels), pref.LocationPreference,
	).Scan(&pref.CreatedAt, &pref.UpdatedAt)
}

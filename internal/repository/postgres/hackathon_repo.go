package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-hackmate-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type hackathonRepo struct {
	db *pgxpool.Pool
}

func NewHackathonRepository(db *pgxpool.Pool) domain.HackathonRepository {
	return &hackathonRepo{db: db}
}

const hackathonColumns = `
	id, title, COALESCE(description, ''), location_type, COALESCE(location_details, ''),
	start_date, end_date, registration_deadline, max_team_size, min_team_size,
	themes, required_skills, COALESCE(organizer, ''), status, created_by, created_at, updated_at`

func scanHackathon(row pgx.Row) (*domain.Hackathon, error) {
	var h domain.Hackathon
	var themes, skills []string
	err := row.Scan(
		&h.ID, &h.Title, &h.Description, &h.LocationType, &h.LocationDetails,
		&h.StartDate, &h.EndDate, &h.RegistrationDeadline, &h.MaxTeamSize, &h.MinTeamSize,
		pq.Array(&themes), pq.Array(&skills), &h.Organizer, &h.Status, &h.CreatedBy,
		&h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	h.Themes = domain.NewSkillSet(themes...)
	h.RequiredSkills = domain.NewSkillSet(skills...)
	return &h, nil
}

func (r *hackathonRepo) Create(ctx context.Context, hackathon *domain.Hackathon) error {
	query := `
		INSERT INTO hackathons (title, description, location_type, location_details, start_date, end_date,
		                        registration_deadline, max_team_size, min_team_size, themes, required_skills,
		                        organizer, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		hackathon.Title, hackathon.Description, hackathon.LocationType, hackathon.LocationDetails,
		hackathon.StartDate, hackathon.EndDate, hackathon.RegistrationDeadline,
		hackathon.MaxTeamSize, hackathon.MinTeamSize,
		pq.Array([]string(hackathon.Themes)), pq.Array([]string(hackathon.RequiredSkills)),
		hackathon.Organizer, hackathon.Status, hackathon.CreatedBy,
	).Scan(&hackathon.ID, &hackathon.CreatedAt, &hackathon.UpdatedAt)
}

func (r *hackathonRepo) GetByID(ctx context.Context, id int64) (*domain.Hackathon, error) {
	h, err := scanHackathon(r.db.QueryRow(ctx, `SELECT`+hackathonColumns+` FROM hackathons WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return h, nil
}

func (r *hackathonRepo) Fetch(ctx context.Context, status *domain.HackathonStatus, limit, offset int) ([]domain.Hackathon, int64, error) {
	countQuery := `SELECT COUNT(*) FROM hackathons`
	query := `SELECT` + hackathonColumns + ` FROM hackathons`
	args := make([]interface{}, 0, 3)

	if status != nil {
		args = append(args, *status)
		countQuery += ` WHERE status = $1`
		query += ` WHERE status = $1`
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY start_date DESC LIMIT $%d", len(args))
	args = append(args, offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	hackathons := make([]domain.Hackathon, 0)
	for rows.Next() {
		h, err := scanHackathon(rows)
		if err != nil {
			return nil, 0, err
		}
		hackathons = append(hackathons, *h)
	}
	return hackathons, total, rows.Err()
}

func (r *hackathonRepo) FetchUpcoming(ctx context.Context) ([]domain.Hackathon, error) {
	query := `SELECT` + hackathonColumns + ` FROM hackathons WHERE status = 'upcoming' ORDER BY start_date`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hackathons := make([]domain.Hackathon, 0)
	for rows.Next() {
		h, err := scanHackathon(rows)
		if err != nil {
			return nil, err
		}
		hackathons = append(hackathons, *h)
	}
	return hackathons, rows.Err()
}

func (r *hackathonRepo) Update(ctx context.Context, hackathon *domain.Hackathon) error {
	query := `
		UPDATE hackathons SET title = $1, description = $2, location_type = $3, location_details = $4,
		       start_date = $5, end_date = $6, registration_deadline = $7, max_team_size = $8,
		       min_team_size = $9, themes = $10, required_skills = $11, organizer = $12,
		       status = $13, updated_at = NOW()
		WHERE id = $14
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		hackathon.Title, hackathon.Description, hackathon.LocationType, hackathon.LocationDetails,
		hackathon.StartDate, hackathon.EndDate, hackathon.RegistrationDeadline,
		hackathon.MaxTeamSize, hackathon.MinTeamSize,
		pq.Array([]string(hackathon.Themes)), pq.Array([]string(hackathon.RequiredSkills)),
		hackathon.Organizer, hackathon.Status, hackathon.ID,
	).Scan(&hackathon.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *hackathonRepo) CountParticipated(ctx context.Context, userID string) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT t.hackathon_id)
		FROM teams t
		JOIN team_memberships m ON m.team_id = t.id
		WHERE m.user_id = $1 AND m.status = 'accepted'`
	var n int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&n)
	return n, err
}

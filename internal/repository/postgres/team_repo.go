package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-hackmate-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type teamRepo struct {
	db *pgxpool.Pool
}

func NewTeamRepository(db *pgxpool.Pool) domain.TeamRepository {
	return &teamRepo{db: db}
}

// current_size is always derived from accepted memberships, never stored.
const teamSelect = `
	SELECT t.id, t.name, COALESCE(t.description, ''), t.hackathon_id, t.leader_id,
	       t.is_recruiting, t.max_members,
	       (SELECT COUNT(*) FROM team_memberships m WHERE m.team_id = t.id AND m.status = 'accepted') AS current_size,
	       t.required_skills, COALESCE(t.project_idea, ''), t.created_at, t.updated_at
	FROM teams t`

func scanTeam(row pgx.Row) (*domain.Team, error) {
	var t domain.Team
	var skills []string
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.HackathonID, &t.LeaderID,
		&t.IsRecruiting, &t.MaxMembers, &t.CurrentSize,
		pq.Array(&skills), &t.ProjectIdea, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.RequiredSkills = domain.NewSkillSet(skills...)
	return &t, nil
}

func collectTeams(rows pgx.Rows) ([]domain.Team, error) {
	teams := make([]domain.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *t)
	}
	return teams, rows.Err()
}

func (r *teamRepo) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (name, description, hackathon_id, leader_id, is_recruiting, max_members, required_skills, project_idea, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		team.Name, team.Description, team.HackathonID, team.LeaderID,
		team.IsRecruiting, team.MaxMembers, pq.Array([]string(team.RequiredSkills)), team.ProjectIdea,
	).Scan(&team.ID, &team.CreatedAt, &team.UpdatedAt)
}

func (r *teamRepo) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	t, err := scanTeam(r.db.QueryRow(ctx, teamSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *teamRepo) Fetch(ctx context.Context, filter domain.TeamFilter) ([]domain.Team, error) {
	query := teamSelect + ` WHERE 1=1`
	args := make([]interface{}, 0, 3)

	if filter.HackathonID != nil {
		args = append(args, *filter.HackathonID)
		query += fmt.Sprintf(" AND t.hackathon_id = $%d", len(args))
	}
	if filter.IsRecruiting != nil {
		args = append(args, *filter.IsRecruiting)
		query += fmt.Sprintf(" AND t.is_recruiting = $%d", len(args))
	}
	if filter.MemberUserID != "" {
		args = append(args, filter.MemberUserID)
		query += fmt.Sprintf(` AND EXISTS (
			SELECT 1 FROM team_memberships m
			WHERE m.team_id = t.id AND m.user_id = $%d AND m.status = 'accepted')`, len(args))
	}
	query += ` ORDER BY t.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTeams(rows)
}

func (r *teamRepo) FetchRecruiting(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.db.Query(ctx, teamSelect+` WHERE t.is_recruiting = TRUE ORDER BY t.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTeams(rows)
}

func (r *teamRepo) FetchAll(ctx context.Context) ([]domain.Team, error) {
	rows, err := r.db.Query(ctx, teamSelect+` ORDER BY t.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTeams(rows)
}

func (r *teamRepo) FetchByHackathon(ctx context.Context, hackathonID int64) ([]domain.Team, error) {
	rows, err := r.db.Query(ctx, teamSelect+` WHERE t.hackathon_id = $1 ORDER BY t.id`, hackathonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTeams(rows)
}

func (r *teamRepo) MemberTeamIDs(ctx context.Context, userID string) (map[int64]struct{}, error) {
	query := `SELECT team_id FROM team_memberships WHERE user_id = $1 AND status <> 'left'`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

func (r *teamRepo) GetMembership(ctx context.Context, teamID int64, userID string) (*domain.TeamMembership, error) {
	query := `SELECT id, team_id, user_id, role, status, joined_at FROM team_memberships WHERE team_id = $1 AND user_id = $2`
	var m domain.TeamMembership
	err := r.db.QueryRow(ctx, query, teamID, userID).Scan(
		&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.Status, &m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *teamRepo) FetchMemberships(ctx context.Context, teamID int64, status domain.MembershipStatus) ([]domain.TeamMembership, error) {
	query := `SELECT id, team_id, user_id, role, status, joined_at FROM team_memberships WHERE team_id = $1 AND status = $2 ORDER BY joined_at`
	rows, err := r.db.Query(ctx, query, teamID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberships := make([]domain.TeamMembership, 0)
	for rows.Next() {
		var m domain.TeamMembership
		if err := rows.Scan(&m.ID, &m.TeamID, &m.UserID, &m.Role, &m.Status, &m.JoinedAt); err != nil {
			return nil, err
		}
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}

func (r *teamRepo) CreateMembership(ctx context.Context, m *domain.TeamMembership) error {
	query := `
		INSERT INTO team_memberships (team_id, user_id, role, status, joined_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, joined_at`
	return r.db.QueryRow(ctx, query, m.TeamID, m.UserID, m.Role, m.Status).Scan(&m.ID, &m.JoinedAt)
}

func (r *teamRepo) UpdateMembershipStatus(ctx context.Context, id int64, status domain.MembershipStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE team_memberships SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *teamRepo) RoleCounts(ctx context.Context, hackathonID int64) (map[string]int, error) {
	query := `
		SELECT m.role, COUNT(*)
		FROM team_memberships m
		JOIN teams t ON t.id = m.team_id
		WHERE t.hackathon_id = $1 AND m.status = 'accepted'
		GROUP BY m.role`
	rows, err := r.db.Query(ctx, query, hackathonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var role string
		var n int
		if err := rows.Scan(&role, &n); err != nil {
			return nil, err
		}
		counts[role] = n
	}
	return counts, rows.Err()
}

func (r *teamRepo) CountByMember(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM team_memberships WHERE user_id = $1 AND status = 'accepted'`, userID).Scan(&n)
	return n, err
}

func (r *teamRepo) CountByLeader(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teams WHERE leader_id = $1`, userID).Scan(&n)
	return n, err
}

func (r *teamRepo) CountJoinedSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM team_memberships WHERE user_id = $1 AND status = 'accepted' AND joined_at >= $2`,
		userID, since).Scan(&n)
	return n, err
}

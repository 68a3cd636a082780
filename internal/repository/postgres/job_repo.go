package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/jsonfield"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobPostColumns = `id, title, description, city, employer_id, type, modality,
	requirements, obligations, created_at, updated_at`

type jobPostRepo struct {
	db *pgxpool.Pool
}

func NewJobPostRepository(db *pgxpool.Pool) domain.JobPostRepository {
	return &jobPostRepo{db: db}
}

func scanJobPost(row rowScanner) (*domain.JobPost, error) {
	var p domain.JobPost
	var requirements, obligations *string

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.City, &p.EmployerID, &p.Type, &p.Modality,
		&requirements, &obligations, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Requirements = orEmpty(jsonfield.List[string](requirements))
	p.Obligations = orEmpty(jsonfield.List[string](obligations))
	return &p, nil
}

func (r *jobPostRepo) List(ctx context.Context, filter domain.JobPostFilter) ([]domain.JobPost, error) {
	query := `SELECT ` + jobPostColumns + ` FROM job_posts WHERE 1=1`
	var args []interface{}

	if filter.City != "" {
		args = append(args, filter.City)
		query += fmt.Sprintf(" AND city = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Modality != "" {
		args = append(args, filter.Modality)
		query += fmt.Sprintf(" AND modality = $%d", len(args))
	}
	if filter.EmployerID != "" {
		args = append(args, filter.EmployerID)
		query += fmt.Sprintf(" AND employer_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]domain.JobPost, 0)
	for rows.Next() {
		p, err := scanJobPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (r *jobPostRepo) GetByID(ctx context.Context, id string) (*domain.JobPost, error) {
	query := `SELECT ` + jobPostColumns + ` FROM job_posts WHERE id = $1`
	p, err := scanJobPost(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return p, err
}

func (r *jobPostRepo) GetEmployerID(ctx context.Context, id string) (string, error) {
	var employerID string
	err := r.db.QueryRow(ctx, `SELECT employer_id FROM job_posts WHERE id = $1`, id).Scan(&employerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	return employerID, err
}

func (r *jobPostRepo) Create(ctx context.Context, post *domain.JobPost) error {
	query := `INSERT INTO job_posts (id, title, description, city, employer_id, type, modality, requirements, obligations)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		post.ID, post.Title, post.Description, post.City, post.EmployerID, post.Type, post.Modality,
		jsonfield.Encode(post.Requirements), jsonfield.Encode(post.Obligations),
	)
	return err
}

// UpdateOwned applies the update only when the row still belongs to
// employerID, so the ownership check cannot race with a delete.
func (r *jobPostRepo) UpdateOwned(ctx context.Context, id, employerID string, upd *domain.JobPostUpdate) error {
	var b updateBuilder

	if upd.Title.Set {
		b.Set("title", optValue(upd.Title))
	}
	if upd.Description.Set {
		b.Set("description", optValue(upd.Description))
	}
	if upd.City.Set {
		b.Set("city", optValue(upd.City))
	}
	if upd.Type.Set {
		b.Set("type", optValue(upd.Type))
	}
	if upd.Modality.Set {
		b.Set("modality", optValue(upd.Modality))
	}
	if upd.Requirements.Set {
		b.Set("requirements", optEncoded(upd.Requirements))
	}
	if upd.Obligations.Set {
		b.Set("obligations", optEncoded(upd.Obligations))
	}

	if b.Empty() {
		return domain.ErrNoFields
	}

	query, args := b.Build("job_posts", []string{"id", "employer_id"}, id, employerID)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobPostRepo) DeleteOwned(ctx context.Context, id, employerID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM job_posts WHERE id = $1 AND employer_id = $2`, id, employerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/jsonfield"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const userColumns = `id, name, email, password, role, phone_intl, city, career, specialty, summary,
	languages, certificates, skills, experiences, service_categories, previous_works, reviews,
	rating, is_profile_public, company_name, tax_id, is_employer_verified, created_at, updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	var languages, certificates, skills, experiences, serviceCategories, previousWorks, reviews *string

	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.PhoneIntl, &u.City, &u.Career,
		&u.Specialty, &u.Summary,
		&languages, &certificates, &skills, &experiences, &serviceCategories, &previousWorks, &reviews,
		&u.Rating, &u.IsProfilePublic, &u.CompanyName, &u.TaxID, &u.IsEmployerVerified,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Languages = orEmpty(jsonfield.List[interface{}](languages))
	u.Certificates = orEmpty(jsonfield.List[interface{}](certificates))
	u.Skills = orEmpty(jsonfield.List[interface{}](skills))
	u.Experiences = orEmpty(jsonfield.List[interface{}](experiences))
	u.ServiceCategories = orEmpty(jsonfield.List[interface{}](serviceCategories))
	u.PreviousWorks = orEmpty(jsonfield.List[interface{}](previousWorks))
	u.Reviews = orEmpty(jsonfield.List[domain.Review](reviews))
	return &u, nil
}

// orEmpty substitutes the empty default when a stored column decoded to
// nothing usable.
func orEmpty[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

func (r *userRepo) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE 1=1`
	var args []interface{}

	if filter.Role != "" {
		args = append(args, filter.Role)
		query += fmt.Sprintf(" AND role = $%d", len(args))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		query += fmt.Sprintf(" AND city = $%d", len(args))
	}
	if filter.IsProfilePublic != nil {
		args = append(args, *filter.IsProfilePublic)
		query += fmt.Sprintf(" AND is_profile_public = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d OR career ILIKE $%d OR specialty ILIKE $%d)", n, n, n, n)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return u, err
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return u, err
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, role, name, email, password, phone_intl, city)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Role, user.Name, user.Email, user.Password, user.PhoneIntl, user.City,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("El email ya está registrado")
		}
		return err
	}
	return nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, id string, upd *domain.UserUpdate) error {
	var b updateBuilder

	if upd.Name.Set {
		b.Set("name", optValue(upd.Name))
	}
	if upd.PhoneIntl.Set {
		b.Set("phone_intl", optValue(upd.PhoneIntl))
	}
	if upd.City.Set {
		b.Set("city", optValue(upd.City))
	}
	if upd.Career.Set {
		b.Set("career", optValue(upd.Career))
	}
	if upd.Specialty.Set {
		b.Set("specialty", optValue(upd.Specialty))
	}
	if upd.Summary.Set {
		b.Set("summary", optValue(upd.Summary))
	}
	if upd.Languages.Set {
		b.Set("languages", optEncoded(upd.Languages))
	}
	if upd.Certificates.Set {
		b.Set("certificates", optEncoded(upd.Certificates))
	}
	if upd.Skills.Set {
		b.Set("skills", optEncoded(upd.Skills))
	}
	if upd.Experiences.Set {
		b.Set("experiences", optEncoded(upd.Experiences))
	}
	if upd.ServiceCategories.Set {
		b.Set("service_categories", optEncoded(upd.ServiceCategories))
	}
	if upd.PreviousWorks.Set {
		b.Set("previous_works", optEncoded(upd.PreviousWorks))
	}
	if upd.IsProfilePublic.Set {
		b.Set("is_profile_public", optValue(upd.IsProfilePublic))
	}
	if upd.CompanyName.Set {
		b.Set("company_name", optValue(upd.CompanyName))
	}
	if upd.TaxID.Set {
		b.Set("tax_id", optValue(upd.TaxID))
	}

	if b.Empty() {
		return domain.ErrNoFields
	}

	query, args := b.Build("users", []string{"id"}, id)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdatePassword(ctx context.Context, id, hashed string) error {
	query := `UPDATE users SET password = $2, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, hashed)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) UpdateReviews(ctx context.Context, id string, reviews []domain.Review, avgRating float64) error {
	query := `UPDATE users SET reviews = $2, rating = $3, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, jsonfield.Encode(reviews), avgRating)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

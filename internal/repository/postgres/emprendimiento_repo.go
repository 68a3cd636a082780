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

const emprendimientoColumns = `id, name, description, products, phone, owner_id, image1_url, image2_url,
	created_at, updated_at`

type emprendimientoRepo struct {
	db *pgxpool.Pool
}

func NewEmprendimientoRepository(db *pgxpool.Pool) domain.EmprendimientoRepository {
	return &emprendimientoRepo{db: db}
}

func scanEmprendimiento(row rowScanner) (*domain.Emprendimiento, error) {
	var e domain.Emprendimiento
	var products *string

	err := row.Scan(
		&e.ID, &e.Name, &e.Description, &products, &e.Phone, &e.OwnerID,
		&e.Image1URL, &e.Image2URL, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.Products = orEmpty(jsonfield.List[interface{}](products))
	return &e, nil
}

func (r *emprendimientoRepo) List(ctx context.Context, filter domain.EmprendimientoFilter) ([]domain.Emprendimiento, error) {
	query := `SELECT ` + emprendimientoColumns + ` FROM emprendimientos WHERE 1=1`
	var args []interface{}

	if filter.OwnerID != "" {
		args = append(args, filter.OwnerID)
		query += fmt.Sprintf(" AND owner_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", n, n)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emprendimientos := make([]domain.Emprendimiento, 0)
	for rows.Next() {
		e, err := scanEmprendimiento(rows)
		if err != nil {
			return nil, err
		}
		emprendimientos = append(emprendimientos, *e)
	}
	return emprendimientos, rows.Err()
}

func (r *emprendimientoRepo) GetByID(ctx context.Context, id string) (*domain.Emprendimiento, error) {
	query := `SELECT ` + emprendimientoColumns + ` FROM emprendimientos WHERE id = $1`
	e, err := scanEmprendimiento(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return e, err
}

func (r *emprendimientoRepo) GetOwnerID(ctx context.Context, id string) (string, error) {
	var ownerID string
	err := r.db.QueryRow(ctx, `SELECT owner_id FROM emprendimientos WHERE id = $1`, id).Scan(&ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	return ownerID, err
}

func (r *emprendimientoRepo) Create(ctx context.Context, emp *domain.Emprendimiento) error {
	query := `INSERT INTO emprendimientos (id, name, description, products, phone, owner_id, image1_url, image2_url)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		emp.ID, emp.Name, emp.Description, jsonfield.Encode(emp.Products), emp.Phone,
		emp.OwnerID, emp.Image1URL, emp.Image2URL,
	)
	return err
}

// UpdateOwned applies the update only when the row still belongs to
// ownerID, so the ownership check cannot race with a delete.
func (r *emprendimientoRepo) UpdateOwned(ctx context.Context, id, ownerID string, upd *domain.EmprendimientoUpdate) error {
	var b updateBuilder

	if upd.Name.Set {
		b.Set("name", optValue(upd.Name))
	}
	if upd.Description.Set {
		b.Set("description", optValue(upd.Description))
	}
	if upd.Products.Set {
		b.Set("products", optEncoded(upd.Products))
	}
	if upd.Phone.Set {
		b.Set("phone", optValue(upd.Phone))
	}
	if upd.Image1URL.Set {
		b.Set("image1_url", optValue(upd.Image1URL))
	}
	if upd.Image2URL.Set {
		b.Set("image2_url", optValue(upd.Image2URL))
	}

	if b.Empty() {
		return domain.ErrNoFields
	}

	query, args := b.Build("emprendimientos", []string{"id", "owner_id"}, id, ownerID)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *emprendimientoRepo) DeleteOwned(ctx context.Context, id, ownerID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM emprendimientos WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

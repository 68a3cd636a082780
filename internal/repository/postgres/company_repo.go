package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const companyColumns = `id, name, region, department, city, address, sector, phone, email,
	website, description, employee_count, founded_year, created_at, updated_at`

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func scanCompany(row rowScanner) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.Name, &c.Region, &c.Department, &c.City, &c.Address, &c.Sector,
		&c.Phone, &c.Email, &c.Website, &c.Description, &c.EmployeeCount, &c.FoundedYear,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *companyRepo) List(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE 1=1`
	var args []interface{}

	if filter.Department != "" {
		args = append(args, filter.Department)
		query += fmt.Sprintf(" AND department = $%d", len(args))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		query += fmt.Sprintf(" AND city = $%d", len(args))
	}
	if filter.Sector != "" {
		args = append(args, filter.Sector)
		query += fmt.Sprintf(" AND sector = $%d", len(args))
	}
	if filter.Region != "" {
		args = append(args, filter.Region)
		query += fmt.Sprintf(" AND region = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", n, n)
	}
	query += " ORDER BY name ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]domain.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

func (r *companyRepo) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	c, err := scanCompany(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return c, err
}

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (id, name, region, department, city, address, sector, phone, email,
	          website, description, employee_count, founded_year)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Region, company.Department, company.City,
		company.Address, company.Sector, company.Phone, company.Email, company.Website,
		company.Description, company.EmployeeCount, company.FoundedYear,
	)
	return err
}

func (r *companyRepo) Update(ctx context.Context, id string, upd *domain.CompanyUpdate) error {
	var b updateBuilder

	if upd.Name.Set {
		b.Set("name", optValue(upd.Name))
	}
	if upd.Region.Set {
		b.Set("region", optValue(upd.Region))
	}
	if upd.Department.Set {
		b.Set("department", optValue(upd.Department))
	}
	if upd.City.Set {
		b.Set("city", optValue(upd.City))
	}
	if upd.Address.Set {
		b.Set("address", optValue(upd.Address))
	}
	if upd.Sector.Set {
		b.Set("sector", optValue(upd.Sector))
	}
	if upd.Phone.Set {
		b.Set("phone", optValue(upd.Phone))
	}
	if upd.Email.Set {
		b.Set("email", optValue(upd.Email))
	}
	if upd.Website.Set {
		b.Set("website", optValue(upd.Website))
	}
	if upd.Description.Set {
		b.Set("description", optValue(upd.Description))
	}
	if upd.EmployeeCount.Set {
		b.Set("employee_count", optValue(upd.EmployeeCount))
	}
	if upd.FoundedYear.Set {
		b.Set("founded_year", optValue(upd.FoundedYear))
	}

	if b.Empty() {
		return domain.ErrNoFields
	}

	query, args := b.Build("companies", []string{"id"}, id)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	return err
}

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

const opportunityColumns = `id, department, sector, company_name, position, city, address, phone, email,
	website, description, requirements, salary, schedule, contract_type, benefits, experience,
	contact_person, additional_data, created_at, updated_at`

type opportunityRepo struct {
	db *pgxpool.Pool
}

func NewJobOpportunityRepository(db *pgxpool.Pool) domain.JobOpportunityRepository {
	return &opportunityRepo{db: db}
}

func scanOpportunity(row rowScanner) (*domain.JobOpportunity, error) {
	var o domain.JobOpportunity
	var additionalData *string

	err := row.Scan(
		&o.ID, &o.Department, &o.Sector, &o.CompanyName, &o.Position, &o.City, &o.Address,
		&o.Phone, &o.Email, &o.Website, &o.Description, &o.Requirements, &o.Salary,
		&o.Schedule, &o.ContractType, &o.Benefits, &o.Experience, &o.ContactPerson,
		&additionalData, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.AdditionalData = jsonfield.Object(additionalData)
	if o.AdditionalData == nil {
		o.AdditionalData = map[string]interface{}{}
	}
	return &o, nil
}

func (r *opportunityRepo) List(ctx context.Context, filter domain.JobOpportunityFilter) ([]domain.JobOpportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM job_opportunities WHERE 1=1`
	var args []interface{}

	if filter.Department != "" {
		args = append(args, filter.Department)
		query += fmt.Sprintf(" AND department = $%d", len(args))
	}
	if filter.Sector != "" {
		args = append(args, filter.Sector)
		query += fmt.Sprintf(" AND sector = $%d", len(args))
	}
	if filter.City != "" {
		args = append(args, filter.City)
		query += fmt.Sprintf(" AND city = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (company_name ILIKE $%d OR position ILIKE $%d OR description ILIKE $%d)", n, n, n)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	opportunities := make([]domain.JobOpportunity, 0)
	for rows.Next() {
		o, err := scanOpportunity(rows)
		if err != nil {
			return nil, err
		}
		opportunities = append(opportunities, *o)
	}
	return opportunities, rows.Err()
}

func (r *opportunityRepo) GetByID(ctx context.Context, id string) (*domain.JobOpportunity, error) {
	query := `SELECT ` + opportunityColumns + ` FROM job_opportunities WHERE id = $1`
	o, err := scanOpportunity(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return o, err
}

func (r *opportunityRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM job_opportunities WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *opportunityRepo) Create(ctx context.Context, opp *domain.JobOpportunity) error {
	query := `INSERT INTO job_opportunities (
	            id, department, sector, company_name, position, city, address, phone, email,
	            website, description, requirements, salary, schedule, contract_type, benefits,
	            experience, contact_person, additional_data
	          ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.db.Exec(ctx, query,
		opp.ID, opp.Department, opp.Sector, opp.CompanyName, opp.Position, opp.City, opp.Address,
		opp.Phone, opp.Email, opp.Website, opp.Description, opp.Requirements, opp.Salary,
		opp.Schedule, opp.ContractType, opp.Benefits, opp.Experience, opp.ContactPerson,
		jsonfield.Encode(opp.AdditionalData),
	)
	return err
}

func (r *opportunityRepo) Update(ctx context.Context, id string, upd *domain.JobOpportunityUpdate) error {
	var b updateBuilder

	if upd.Department.Set {
		b.Set("department", optValue(upd.Department))
	}
	if upd.Sector.Set {
		b.Set("sector", optValue(upd.Sector))
	}
	if upd.CompanyName.Set {
		b.Set("company_name", optValue(upd.CompanyName))
	}
	if upd.Position.Set {
		b.Set("position", optValue(upd.Position))
	}
	if upd.City.Set {
		b.Set("city", optValue(upd.City))
	}
	if upd.Address.Set {
		b.Set("address", optValue(upd.Address))
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
	if upd.Requirements.Set {
		b.Set("requirements", optValue(upd.Requirements))
	}
	if upd.Salary.Set {
		b.Set("salary", optValue(upd.Salary))
	}
	if upd.Schedule.Set {
		b.Set("schedule", optValue(upd.Schedule))
	}
	if upd.ContractType.Set {
		b.Set("contract_type", optValue(upd.ContractType))
	}
	if upd.Benefits.Set {
		b.Set("benefits", optValue(upd.Benefits))
	}
	if upd.Experience.Set {
		b.Set("experience", optValue(upd.Experience))
	}
	if upd.ContactPerson.Set {
		b.Set("contact_person", optValue(upd.ContactPerson))
	}
	if upd.AdditionalData.Set {
		b.Set("additional_data", optEncoded(upd.AdditionalData))
	}

	if b.Empty() {
		return domain.ErrNoFields
	}

	query, args := b.Build("job_opportunities", []string{"id"}, id)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *opportunityRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM job_opportunities WHERE id = $1`, id)
	return err
}

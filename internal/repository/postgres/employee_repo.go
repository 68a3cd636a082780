package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const employeeColumns = `id, name, position, email, phone, hire_date, department, salary,
	status, photo_url, address, created_at, updated_at`

const memorandumColumns = `id, employee_id, title, description, date, severity, issued_by, created_at`

const recognitionColumns = `id, employee_id, title, description, date, type, issued_by, created_at`

type employeeRepo struct {
	db *pgxpool.Pool
}

func NewEmployeeRepository(db *pgxpool.Pool) domain.EmployeeRepository {
	return &employeeRepo{db: db}
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Position, &e.Email, &e.Phone, &e.HireDate, &e.Department,
		&e.Salary, &e.Status, &e.PhotoURL, &e.Address, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *employeeRepo) List(ctx context.Context, filter domain.EmployeeFilter) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE 1=1`
	var args []interface{}

	if filter.Department != "" {
		args = append(args, filter.Department)
		query += fmt.Sprintf(" AND department = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d OR position ILIKE $%d)", n, n, n)
	}
	query += " ORDER BY name ASC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return e, err
}

func (r *employeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	query := `INSERT INTO employees (id, name, position, email, phone, hire_date, department, salary, status, photo_url, address)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		employee.ID, employee.Name, employee.Position, employee.Email, employee.Phone,
		employee.HireDate, employee.Department, employee.Salary, employee.Status,
		employee.PhotoURL, employee.Address,
	)
	return err
}

func (r *employeeRepo) Update(ctx context.Context, id string, upd *domain.EmployeeUpdate) error {
	var b updateBuilder

	if upd.Name.Set {
		b.Set("name", optValue(upd.Name))
	}
	if upd.Position.Set {
		b.Set("position", optValue(upd.Position))
	}
	if upd.Email.Set {
		b.Set("email", optValue(upd.Email))
	}
	if upd.Phone.Set {
		b.Set("phone", optValue(upd.Phone))
	}
	if upd.HireDate.Set {
		b.Set("hire_date", optValue(upd.HireDate))
	}
	if upd.Department.Set {
		b.Set("department", optValue(upd.Department))
	}
	if upd.Salary.Set {
		b.Set("salary", optValue(upd.Salary))
	}
	if upd.Status.Set {
		b.Set("status", optValue(upd.Status))
	}
	if upd.PhotoURL.Set {
		b.Set("photo_url", optValue(upd.PhotoURL))
	}
	if upd.Address.Set {
		b.Set("address", optValue(upd.Address))
	}

	if b.Empty() {
		return domain.ErrNoFields
	}

	query, args := b.Build("employees", []string{"id"}, id)
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *employeeRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	return err
}

func (r *employeeRepo) ListMemorandums(ctx context.Context, employeeID string) ([]domain.Memorandum, error) {
	query := `SELECT ` + memorandumColumns + ` FROM memorandums WHERE employee_id = $1 ORDER BY date DESC`
	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memos := make([]domain.Memorandum, 0)
	for rows.Next() {
		var m domain.Memorandum
		if err := rows.Scan(&m.ID, &m.EmployeeID, &m.Title, &m.Description, &m.Date, &m.Severity, &m.IssuedBy, &m.CreatedAt); err != nil {
			return nil, err
		}
		memos = append(memos, m)
	}
	return memos, rows.Err()
}

func (r *employeeRepo) CreateMemorandum(ctx context.Context, memo *domain.Memorandum) error {
	query := `INSERT INTO memorandums (id, employee_id, title, description, date, severity, issued_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		memo.ID, memo.EmployeeID, memo.Title, memo.Description, memo.Date, memo.Severity, memo.IssuedBy,
	)
	return err
}

func (r *employeeRepo) DeleteMemorandum(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM memorandums WHERE id = $1`, id)
	return err
}

func (r *employeeRepo) ListRecognitions(ctx context.Context, employeeID string) ([]domain.Recognition, error) {
	query := `SELECT ` + recognitionColumns + ` FROM recognitions WHERE employee_id = $1 ORDER BY date DESC`
	rows, err := r.db.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recs := make([]domain.Recognition, 0)
	for rows.Next() {
		var rec domain.Recognition
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Title, &rec.Description, &rec.Date, &rec.Type, &rec.IssuedBy, &rec.CreatedAt); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func (r *employeeRepo) CreateRecognition(ctx context.Context, rec *domain.Recognition) error {
	query := `INSERT INTO recognitions (id, employee_id, title, description, date, type, issued_by)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		rec.ID, rec.EmployeeID, rec.Title, rec.Description, rec.Date, rec.Type, rec.IssuedBy,
	)
	return err
}

func (r *employeeRepo) DeleteRecognition(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM recognitions WHERE id = $1`, id)
	return err
}

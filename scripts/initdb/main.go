// Command initdb creates the application schema. Safe to re-run, every
// statement is IF NOT EXISTS.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('seeker', 'serviceSeeker', 'employer')),
		phone_intl TEXT,
		city TEXT,
		career TEXT,
		specialty TEXT,
		summary TEXT,
		languages TEXT,
		certificates TEXT,
		skills TEXT,
		experiences TEXT,
		service_categories TEXT,
		previous_works TEXT,
		reviews TEXT,
		rating FLOAT,
		is_profile_public BOOLEAN NOT NULL DEFAULT TRUE,
		company_name TEXT,
		tax_id TEXT,
		is_employer_verified BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS companies (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		region TEXT,
		department TEXT,
		city TEXT,
		address TEXT,
		sector TEXT,
		phone TEXT,
		email TEXT,
		website TEXT,
		description TEXT,
		employee_count TEXT,
		founded_year TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS job_posts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		city TEXT NOT NULL,
		employer_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		type TEXT NOT NULL CHECK (type IN ('fullTime', 'partTime')),
		modality TEXT NOT NULL CHECK (modality IN ('onsite', 'remote', 'hybrid')),
		requirements TEXT,
		obligations TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS job_opportunities (
		id TEXT PRIMARY KEY,
		department TEXT NOT NULL,
		sector TEXT NOT NULL,
		company_name TEXT NOT NULL,
		position TEXT,
		city TEXT,
		address TEXT,
		phone TEXT,
		email TEXT,
		website TEXT,
		description TEXT,
		requirements TEXT,
		salary TEXT,
		schedule TEXT,
		contract_type TEXT,
		benefits TEXT,
		experience TEXT,
		contact_person TEXT,
		additional_data TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		hire_date TIMESTAMPTZ NOT NULL,
		department TEXT NOT NULL,
		salary FLOAT NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive', 'suspended')),
		photo_url TEXT,
		address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS memorandums (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		severity TEXT NOT NULL CHECK (severity IN ('leve', 'grave', 'muy_grave')),
		issued_by TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS recognitions (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		type TEXT NOT NULL,
		issued_by TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS emprendimientos (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		products TEXT,
		phone TEXT,
		owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		image1_url TEXT,
		image2_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_job_posts_employer ON job_posts(employer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_memorandums_employee ON memorandums(employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_recognitions_employee ON recognitions(employee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_emprendimientos_owner ON emprendimientos(owner_id)`,
}

func main() {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "connect:", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			fmt.Fprintln(os.Stderr, "exec:", err)
			os.Exit(1)
		}
	}

	fmt.Println("Schema ready")
}

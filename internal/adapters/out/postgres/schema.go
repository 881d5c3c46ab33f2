package postgres

import (
	"database/sql"

	"logistics/internal/pkg/errs"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open wraps an existing database/sql connection (opened with the lib/pq
// driver) in a gorm session. The same connection is shared by every
// repository of the run.
func Open(sqlDB *sql.DB) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		return nil, errs.NewStorageErrorWithCause("open database session", err)
	}
	return db, nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id      integer PRIMARY KEY,
		name    text NOT NULL,
		address text NOT NULL,
		phone   text NOT NULL,
		email   text NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stores (
		id      integer PRIMARY KEY,
		name    text NOT NULL,
		address text NOT NULL,
		contact text NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS deposits (
		id       integer PRIMARY KEY,
		store_id integer NOT NULL,
		address  text NOT NULL,
		status   text NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS packages (
		id         integer PRIMARY KEY,
		order_id   integer NOT NULL,
		deposit_id integer NOT NULL,
		weight     double precision NOT NULL,
		dimensions text NOT NULL,
		cost       double precision NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id          integer PRIMARY KEY,
		customer_id integer NOT NULL,
		delivery_id integer NOT NULL,
		placed_at   timestamptz NOT NULL,
		delivery_at timestamptz NOT NULL,
		total_cost  double precision NOT NULL,
		status      text NOT NULL,
		location    text NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS deliveries (
		id                 integer PRIMARY KEY,
		location           text NOT NULL,
		employee_id        integer NOT NULL,
		delivery_person_id integer NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS departments (
		id   integer PRIMARY KEY,
		name text NOT NULL,
		task text NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id            integer PRIMARY KEY,
		department_id integer NOT NULL,
		name          text NOT NULL,
		phone         text NOT NULL,
		license       text NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS delivery_persons (
		id         integer PRIMARY KEY,
		name       text NOT NULL,
		phone      text NOT NULL,
		verified   boolean NOT NULL,
		license    text NOT NULL,
		vehicle_id integer NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS personal_vehicles (
		id                 integer PRIMARY KEY,
		delivery_person_id integer NOT NULL,
		extra_fee          double precision NOT NULL,
		capacity           integer NOT NULL,
		kind               text NOT NULL
	)`,
}

// CreateSchema creates the ten entity tables when they do not exist.
// Foreign keys are deliberately absent: referential integrity is kept by
// the domain services, not by the database.
func CreateSchema(db *gorm.DB) error {
	for _, stmt := range schemaStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return errs.NewStorageErrorWithCause("create schema", err)
		}
	}
	return nil
}

package migration

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	authdomain "github.com/smallbiznis/rentdesk/internal/auth/domain"
	memberdomain "github.com/smallbiznis/rentdesk/internal/member/domain"
	monthdomain "github.com/smallbiznis/rentdesk/internal/month/domain"
	paymentdomain "github.com/smallbiznis/rentdesk/internal/payment/domain"
	rentdomain "github.com/smallbiznis/rentdesk/internal/rentrecord/domain"
	"gorm.io/gorm"
)

// RunMigrations applies the embedded SQL migrations against postgres.
func RunMigrations(db *sql.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	sub, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	upErr := migrator.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", upErr)
	}
	// Do not call migrator.Close here because it would close the shared *sql.DB.

	return nil
}

// AutoMigrate creates the schema from the model structs. It covers the
// sqlite and mysql paths, where the embedded SQL (written for postgres)
// does not apply.
func AutoMigrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&memberdomain.Member{},
		&monthdomain.Month{},
		&rentdomain.RentRecord{},
		&paymentdomain.Payment{},
		&authdomain.User{},
		&authdomain.Session{},
	)
}

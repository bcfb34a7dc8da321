// Package seed bootstraps first-run data for self-hosted installs.
package seed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	authdomain "github.com/smallbiznis/rentdesk/internal/auth/domain"
	"github.com/smallbiznis/rentdesk/internal/auth/password"
	"github.com/smallbiznis/rentdesk/internal/config"
	"gorm.io/gorm"
)

// EnsureDefaultAdmin creates the bootstrap admin account when no user with
// the configured email exists. The account is flagged is_default until its
// password is changed.
func EnsureDefaultAdmin(db *gorm.DB, cfg config.BootstrapConfig) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	if email == "" {
		return errors.New("bootstrap admin email is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user authdomain.User
		err := tx.Where("email = ?", email).First(&user).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := password.Hash(cfg.AdminPassword)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		user = authdomain.User{
			ID:                  node.Generate(),
			Email:               email,
			DisplayName:         strings.TrimSpace(cfg.AdminDisplayName),
			PasswordHash:        &hashed,
			IsDefault:           true,
			LastPasswordChanged: nil,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		return tx.Create(&user).Error
	})
}

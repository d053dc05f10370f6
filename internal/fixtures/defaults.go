package fixtures

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/employeems/ems-backend-go/internal/config"
	"github.com/employeems/ems-backend-go/internal/domain/department"
	"github.com/employeems/ems-backend-go/internal/domain/user"
	"github.com/employeems/ems-backend-go/internal/pkg/database"
	"github.com/employeems/ems-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// DefaultDepartmentNames are seeded on first start so a fresh install has a
// usable org structure.
var DefaultDepartmentNames = []string{
	"Human Resources",
	"Information Technology",
	"Finance",
	"Marketing",
	"Sales",
	"Operations",
	"Customer Service",
	"Research & Development",
	"Legal",
	"Administration",
}

// SeedDefaults creates the default departments and the bootstrap admin user
// inside one transaction. Seeding is idempotent: rows that already exist are
// left untouched.
func SeedDefaults(
	ctx context.Context,
	db *database.DB,
	departmentRepo department.DepartmentRepository,
	userRepo user.UserRepository,
	admin config.AdminConfig,
) error {
	return postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		existing, err := departmentRepo.List(txCtx, department.DepartmentFilter{})
		if err != nil {
			return fmt.Errorf("failed to list departments: %w", err)
		}
		existingNames := make(map[string]bool, len(existing))
		for _, d := range existing {
			existingNames[d.Name] = true
		}

		for _, name := range DefaultDepartmentNames {
			if existingNames[name] {
				continue
			}
			if _, err := departmentRepo.Create(txCtx, department.Department{Name: name}); err != nil {
				return fmt.Errorf("failed to seed department %q: %w", name, err)
			}
		}

		if admin.Email == "" || admin.Password == "" {
			slog.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set; skipping admin user seed")
			return nil
		}

		if _, err := userRepo.GetByEmail(txCtx, admin.Email); err == nil {
			return nil
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return fmt.Errorf("failed to look up admin user: %w", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		_, err = userRepo.Create(txCtx, user.User{
			Email:        admin.Email,
			PasswordHash: string(hash),
			FullName:     admin.FullName,
			Role:         user.RoleAdmin,
		})
		if err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}

		return nil
	})
}

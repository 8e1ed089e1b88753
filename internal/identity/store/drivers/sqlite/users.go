package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/verdantlabs/identity/internal/identity/domain"
	"github.com/verdantlabs/identity/internal/identity/store"
)

type usersRepo struct {
	db *sql.DB
}

const userColumns = `id, username, email, hashed_password, is_active, roles, created_at, updated_at`

func (r *usersRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username)
	return scanUser(row)
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, `
INSERT INTO users (id, username, email, hashed_password, is_active, roles, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID,
		nullString(u.Username),
		u.Email,
		u.HashedPassword,
		u.IsActive,
		rolesColumn(u.Roles),
		u.CreatedAt,
		u.UpdatedAt,
	)
	if err != nil {
		return mapConstraint(fmt.Errorf("sqlite: insert user: %w", err))
	}
	return nil
}

func (r *usersRepo) Patch(ctx context.Context, id string, p store.UserPatch) (domain.User, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if p.Username != nil {
		sets = append(sets, "username = ?")
		args = append(args, nullString(*p.Username))
	}
	if p.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *p.Email)
	}
	if p.HashedPassword != nil {
		sets = append(sets, "hashed_password = ?")
		args = append(args, *p.HashedPassword)
	}
	if p.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *p.IsActive)
	}
	if p.Roles != nil {
		sets = append(sets, "roles = ?")
		args = append(args, rolesColumn(p.Roles))
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return domain.User{}, mapConstraint(fmt.Errorf("sqlite: patch user: %w", err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return domain.User{}, fmt.Errorf("sqlite: patch user rows affected: %w", err)
	}
	if n == 0 {
		return domain.User{}, store.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *usersRepo) Replace(ctx context.Context, u domain.User) (domain.User, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE users
SET username = ?, email = ?, hashed_password = ?, is_active = ?, roles = ?, updated_at = ?
WHERE id = ?`,
		nullString(u.Username),
		u.Email,
		u.HashedPassword,
		u.IsActive,
		rolesColumn(u.Roles),
		time.Now().UTC(),
		u.ID,
	)
	if err != nil {
		return domain.User{}, mapConstraint(fmt.Errorf("sqlite: replace user: %w", err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return domain.User{}, fmt.Errorf("sqlite: replace user rows affected: %w", err)
	}
	if n == 0 {
		return domain.User{}, store.ErrNotFound
	}

	return r.GetByID(ctx, u.ID)
}

func (r *usersRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("sqlite: delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("sqlite: delete user rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *usersRepo) List(ctx context.Context, offset, limit int) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser maps a row to a domain.User. Role tags are parsed strictly:
// an unknown tag stored in the roles column fails the read instead of
// being dropped, so it can never satisfy a role requirement downstream.
func scanUser(row rowScanner) (domain.User, error) {
	var (
		u        domain.User
		username sql.NullString
		roles    string
	)
	if err := row.Scan(
		&u.ID,
		&username,
		&u.Email,
		&u.HashedPassword,
		&u.IsActive,
		&roles,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.Username = username.String

	parsed, err := domain.ParseRoles(strings.Fields(roles))
	if err != nil {
		return domain.User{}, fmt.Errorf("sqlite: user %s: %w", u.ID, err)
	}
	u.Roles = parsed

	return u, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func rolesColumn(roles []domain.Role) string {
	return strings.Join(domain.RoleStrings(roles), " ")
}

package store

import (
	"context"
	"errors"
	"fmt"

	"sokohub/internal/database"
	"sokohub/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func GetUserByID(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password, role, avatar, phone, created_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Avatar,
		&u.Phone,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password, role, avatar, phone, created_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.Avatar,
		&u.Phone,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password, role, avatar, phone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		u.Role,
		u.Avatar,
		u.Phone,
	)
	if err := row.Scan(&u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// UpdateUserProfile overwrites the self-serviceable fields. Role and password
// are deliberately not touched here.
func UpdateUserProfile(ctx context.Context, db database.DB, u *model.User) error {
	tag, err := db.Exec(ctx,
		`UPDATE users SET name = $1, email = $2, phone = $3, avatar = $4
		 WHERE id = $5`,
		u.Name,
		u.Email,
		u.Phone,
		u.Avatar,
		u.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("UpdateUserProfile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func CountUsers(ctx context.Context, db database.DB) (int, error) {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return count, nil
}

func ListAdmins(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, email, password, role, avatar, phone, created_at
		 FROM users WHERE role = $1`,
		model.RoleAdmin,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAdmins: %w", err)
	}
	defer rows.Close()

	admins := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.PasswordHash,
			&u.Role,
			&u.Avatar,
			&u.Phone,
			&u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListAdmins: %w", err)
		}
		admins = append(admins, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAdmins: %w", err)
	}
	return admins, nil
}

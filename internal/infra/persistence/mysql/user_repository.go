package mysql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	domuser "example.com/musicstore/internal/domain/user"
)

const mysqlErrDuplicateEntry = 1062

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	res, err := r.db.ExecContext(ctx, `
        INSERT INTO users (username, email, password_hash, role_code)
        VALUES (?, ?, ?, ?)
    `, u.Username, u.Email, u.PasswordHash, u.RoleCode)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return nil, domuser.ErrUsernameTaken
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	u.ID = id
	return u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domuser.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *UserRepository) getBy(ctx context.Context, column, value string) (*domuser.User, error) {
	var u domuser.User
	var role string
	err := r.db.QueryRowContext(ctx, `
        SELECT id, username, email, password_hash, role_code
        FROM users
        WHERE `+column+` = ?
    `, value).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domuser.ErrUserNotFound
		}
		return nil, err
	}

	u.RoleCode, err = domuser.ParseRoleCode(role)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

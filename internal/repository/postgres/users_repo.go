package postgres

import (
	"context"
	"errors"

	"github.com/castanedalj/tienda-backend/internal/models"
	"github.com/castanedalj/tienda-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type usersRepo struct{ pool *pgxpool.Pool }

func NewUsers(pool *pgxpool.Pool) repository.Users {
	return &usersRepo{pool: pool}
}

func (r *usersRepo) Create(username, hash, role string) (models.User, error) {
	id := uuid.NewString()
	_, err := r.pool.Exec(context.Background(),
		`INSERT INTO users(id, username, password_hash, role) VALUES($1,$2,$3,$4)`,
		id, username, hash, role,
	)
	if err != nil {
		return models.User{}, err
	}
	return r.getByID(id)
}

func (r *usersRepo) getByID(id string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, username, password_hash, role, created_at FROM users WHERE id=$1`, id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}

// GetByUsername returns the oldest record for the name. Usernames are not
// unique in the schema, matching the data the API has always accepted.
func (r *usersRepo) GetByUsername(username string) (models.User, error) {
	var u models.User
	err := r.pool.QueryRow(context.Background(),
		`SELECT id, username, password_hash, role, created_at
		   FROM users WHERE username=$1 ORDER BY created_at ASC LIMIT 1`, username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, repository.ErrNotFound
	}
	return u, err
}

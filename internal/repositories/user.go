package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/lightbnb/internal/logger"
	"github.com/sbilibin2017/lightbnb/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the first user whose email matches exactly.
// It returns sql.ErrNoRows when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, password
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Query(query, []any{email}, user.ID, err)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetByID returns the user with the given primary key or sql.ErrNoRows.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, password
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Query(query, []any{id}, user.ID, err)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user and returns the stored row, generated id included.
func (r *UserWriteRepository) Save(ctx context.Context, user models.NewUser) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password
	`
	args := []any{user.Name, user.Email, user.Password}

	var saved models.UserDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	// Never log the password argument
	logger.Query(query, []any{user.Name, user.Email, "***"}, saved.ID, err)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

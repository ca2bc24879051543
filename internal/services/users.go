package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/lightbnb/internal/logger"
	"github.com/sbilibin2017/lightbnb/internal/models"
	"github.com/sbilibin2017/lightbnb/internal/repositories"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.NewUser) (*models.UserDB, error)
}

// UserCache caches users by id.
type UserCache interface {
	Get(ctx context.Context, id int64) (*models.UserDB, error)
	Set(ctx context.Context, user *models.UserDB) error
}

// UserService looks users up and creates them.
type UserService struct {
	reader UserReader
	writer UserWriter
	cache  UserCache
	events eventPublisher
}

// NewUserService creates a new UserService. cache and kafkaWriter may be nil.
func NewUserService(reader UserReader, writer UserWriter, cache UserCache, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
		cache:  cache,
		events: eventPublisher{writer: kafkaWriter},
	}
}

// GetUserByEmail returns the user with exactly this email or ErrUserNotFound.
func (svc *UserService) GetUserByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		err = classify("get user by email", err, ErrUserNotFound)
		logger.Log.Errorw("failed to get user by email", "email", email, "err", err)
		return nil, err
	}
	return user, nil
}

// GetUserByID returns the user with this id or ErrUserNotFound.
// The cache is consulted first and filled on a store hit.
func (svc *UserService) GetUserByID(ctx context.Context, id int64) (*models.UserDB, error) {
	if svc.cache != nil {
		user, err := svc.cache.Get(ctx, id)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("failed to read cached user", "id", id, "err", err)
		}
	}

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		err = classify("get user by id", err, ErrUserNotFound)
		logger.Log.Errorw("failed to get user by id", "id", id, "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Errorw("failed to cache user", "id", id, "err", err)
		}
	}

	return user, nil
}

// AddUser stores a new user and returns the stored row. The password is stored as given.
func (svc *UserService) AddUser(ctx context.Context, user models.NewUser) (*models.UserDB, error) {
	saved, err := svc.writer.Save(ctx, user)
	if err != nil {
		err = classify("add user", err, nil)
		logger.Log.Errorw("failed to save user", "email", user.Email, "err", err)
		return nil, err
	}

	svc.events.publish(ctx, models.OperationUserCreated, saved.ID, 0)

	return saved, nil
}

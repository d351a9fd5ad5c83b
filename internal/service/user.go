package service

import (
	"context"

	"github.com/amsilf/hsk-bot/internal/domain/entities"
)

type UserRepository interface {
	Save(ctx context.Context, user *entities.User) (bool, error)
	RecordPractice(ctx context.Context, userID int64, attempts, correct int) error
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// EnsureUser registers the user on first contact and refreshes the
// profile on subsequent ones.
func (s *UserService) EnsureUser(
	ctx context.Context,
	userID int64,
	firstName, lastName string,
	username string,
	languageCode string,
) error {
	user := entities.NewUser(userID, firstName, lastName, username, languageCode)
	_, err := s.repo.Save(ctx, user)
	return err
}

// RecordPractice folds a finished session into the user's lifetime totals.
func (s *UserService) RecordPractice(ctx context.Context, userID int64, attempts, correct int) error {
	return s.repo.RecordPractice(ctx, userID, attempts, correct)
}

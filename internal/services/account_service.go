package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hirelogic/hirelogic/internal/models"
	pgrepo "github.com/hirelogic/hirelogic/internal/repositories/postgres"
	"github.com/hirelogic/hirelogic/internal/utils"
)

// AccountCreator is the account-creation collaborator the signup form
// controller dispatches to.
type AccountCreator interface {
	Create(ctx context.Context, name, email, password string) (*models.Account, error)
}

type accountService struct {
	accounts pgrepo.AccountRepository
}

func NewAccountService(accounts pgrepo.AccountRepository) AccountCreator {
	return &accountService{accounts: accounts}
}

func (s *accountService) Create(ctx context.Context, name, email, password string) (*models.Account, error) {
	const op = "AccountService.Create"

	if name == "" || email == "" || password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "name, email, and password are required", nil)
	}

	taken, err := s.accounts.EmailExists(ctx, email)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check email", err)
	}
	if taken {
		return nil, utils.ErrEmailTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	a := &models.Account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.accounts.Create(ctx, a); err != nil {
		if errors.Is(err, utils.ErrEmailTaken) {
			return nil, utils.ErrEmailTaken
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create account", err)
	}
	return a, nil
}

package store

import (
	"context"

	"transitlive/tracking-service/internal/models"
)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type Directory interface {
	Register(ctx context.Context, input RegisterInput) (models.Account, error)
	Authenticate(ctx context.Context, email, password string) (models.Account, error)
	FindByID(ctx context.Context, id int) (models.Account, error)
	Count(ctx context.Context) int
}

package usecase

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthUsecase struct {
	db *pgxpool.Pool
}

func NewHealthUsecase(db *pgxpool.Pool) *HealthUsecase {
	return &HealthUsecase{db: db}
}

func (u *HealthUsecase) Check(ctx context.Context) error {
	return u.db.Ping(ctx)
}

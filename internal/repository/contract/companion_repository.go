package contract

import (
	"context"

	"manasfit-be/internal/entity"
)

type CompanionSelectionRepository interface {
	Upsert(ctx context.Context, selection *entity.CompanionSelection) error
	FindByUserId(ctx context.Context, userId string) (*entity.CompanionSelection, error)
}

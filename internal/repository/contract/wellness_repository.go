package contract

import (
	"context"

	"manasfit-be/internal/entity"
	"manasfit-be/internal/repository/specification"
)

type WellnessProfileRepository interface {
	// Upsert writes the profile keyed by user id.
	Upsert(ctx context.Context, profile *entity.WellnessProfile) error
	FindByUserId(ctx context.Context, userId string) (*entity.WellnessProfile, error)
	DeleteByUserId(ctx context.Context, userId string) error
}

type WellnessEntryRepository interface {
	// Upsert writes the entry keyed by (user id, entry date).
	Upsert(ctx context.Context, entry *entity.WellnessEntry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WellnessEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WellnessEntry, error)
}

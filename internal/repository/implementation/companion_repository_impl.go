package implementation

import (
	"context"
	"errors"

	"manasfit-be/internal/entity"
	"manasfit-be/internal/mapper"
	"manasfit-be/internal/model"
	"manasfit-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompanionSelectionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CompanionMapper
}

func NewCompanionSelectionRepository(db *gorm.DB) contract.CompanionSelectionRepository {
	return &CompanionSelectionRepositoryImpl{db: db, mapper: mapper.NewCompanionMapper()}
}

// Upsert replaces both union branches so switching kind clears the old one.
func (r *CompanionSelectionRepositoryImpl) Upsert(ctx context.Context, selection *entity.CompanionSelection) error {
	m := r.mapper.SelectionToModel(selection)
	m.Id = uuid.NewString()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"companion_type", "character", "companion_subtype", "updated_at"}),
		}).
		Create(m).Error
}

func (r *CompanionSelectionRepositoryImpl) FindByUserId(ctx context.Context, userId string) (*entity.CompanionSelection, error) {
	var m model.UserCompanionSelection
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SelectionToEntity(&m), nil
}

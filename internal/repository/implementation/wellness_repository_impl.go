package implementation

import (
	"context"
	"errors"

	"manasfit-be/internal/entity"
	"manasfit-be/internal/mapper"
	"manasfit-be/internal/model"
	"manasfit-be/internal/repository/contract"
	"manasfit-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WellnessProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WellnessMapper
}

func NewWellnessProfileRepository(db *gorm.DB) contract.WellnessProfileRepository {
	return &WellnessProfileRepositoryImpl{db: db, mapper: mapper.NewWellnessMapper()}
}

func (r *WellnessProfileRepositoryImpl) Upsert(ctx context.Context, profile *entity.WellnessProfile) error {
	m := r.mapper.ProfileToModel(profile)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, UpdateAll: true}).
		Create(m).Error
}

func (r *WellnessProfileRepositoryImpl) FindByUserId(ctx context.Context, userId string) (*entity.WellnessProfile, error) {
	var m model.UserWellnessProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ProfileToEntity(&m), nil
}

func (r *WellnessProfileRepositoryImpl) DeleteByUserId(ctx context.Context, userId string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.UserWellnessProfile{}).Error
}

type WellnessEntryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WellnessMapper
}

func NewWellnessEntryRepository(db *gorm.DB) contract.WellnessEntryRepository {
	return &WellnessEntryRepositoryImpl{db: db, mapper: mapper.NewWellnessMapper()}
}

func (r *WellnessEntryRepositoryImpl) Upsert(ctx context.Context, entry *entity.WellnessEntry) error {
	m := r.mapper.EntryToModel(entry)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "entry_date"}},
			UpdateAll: true,
		}).
		Create(m).Error
}

func (r *WellnessEntryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.WellnessEntry, error) {
	var m model.WellnessEntry
	if err := applySpecifications(r.db.WithContext(ctx), specs...).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.EntryToEntity(&m), nil
}

func (r *WellnessEntryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WellnessEntry, error) {
	var models []*model.WellnessEntry
	if err := applySpecifications(r.db.WithContext(ctx), specs...).Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.WellnessEntry, len(models))
	for i, m := range models {
		entities[i] = r.mapper.EntryToEntity(m)
	}
	return entities, nil
}

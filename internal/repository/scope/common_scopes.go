package scope

import "gorm.io/gorm"

// OrderByCreatedAsc breaks timestamp ties by id so ordering is total.
func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}

func OrderByUpdatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("updated_at DESC").Order("id ASC")
}

func OrderByEntryDateDesc(db *gorm.DB) *gorm.DB {
	return db.Order("entry_date DESC")
}

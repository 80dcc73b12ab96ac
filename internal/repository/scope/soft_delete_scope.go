package scope

import "gorm.io/gorm"

// WithSoftDelete includes soft-deleted rows. Used to detect deleted sessions
// before an upsert could resurrect them.
func WithSoftDelete(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

package specification

import (
	"gorm.io/gorm"
)

// ByUserID scopes a query to one conversation owner. UserId is an opaque
// partition key; no existence check is performed anywhere.
type ByUserID struct {
	UserID string
}

func (s ByUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

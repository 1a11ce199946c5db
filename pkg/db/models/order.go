package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is the immutable snapshot produced from a cart at placement time.
// Only the paid flag and timestamp ever change after creation.
type Order struct {
	ID        uuid.UUID   `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID   `gorm:"column:user_id;type:uuid;not null;index"`
	IsPaid    bool        `gorm:"column:is_paid;not null;default:false"`
	PaidAt    *time.Time  `gorm:"column:paid_at"`
	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}

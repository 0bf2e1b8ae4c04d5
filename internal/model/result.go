package model

import (
	"time"

	"gorm.io/gorm"
)

// Result is one finished attempt. Rows are created on submission and
// never updated or deleted; repeat submissions add rows.
type Result struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	User      User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TestID    uint           `json:"test_id" gorm:"not null;index"`
	Test      Test           `json:"test,omitempty" gorm:"foreignKey:TestID"`
	Score     int            `json:"score" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

package model

import (
	"time"

	"gorm.io/gorm"
)

type Test struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Title string `json:"title" gorm:"not null"`
	// Path is the opaque artifact reference of the uploaded definition
	// file. Only the artifact store knows how to resolve it.
	Path      string `json:"path" gorm:"not null"`
	CreatedBy uint   `json:"created_by" gorm:"not null;index"`
	// MaxScore is snapshotted at creation from the question count of the
	// artifact and is never recomputed.
	MaxScore  int            `json:"max_score" gorm:"not null"`
	MaxTime   *int           `json:"max_time,omitempty"`
	Results   []Result       `json:"results,omitempty" gorm:"foreignKey:TestID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

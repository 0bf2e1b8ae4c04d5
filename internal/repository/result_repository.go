package repository

import (
	"github.com/mazation/praktikaBack/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	Create(result *model.Result) error
	FindByTestID(testID uint) ([]model.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Create(result *model.Result) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindByTestID(testID uint) ([]model.Result, error) {
	var results []model.Result
	err := r.db.Where("test_id = ?", testID).
		Preload("User").
		Preload("Test").
		Order("id ASC").
		Find(&results).Error
	return results, err
}

package repository

import (
	"errors"
	"strings"

	"github.com/farmstock-next/internal/models"

	"gorm.io/gorm"
)

// AnimalTypeRepository 动物种类数据访问接口
type AnimalTypeRepository interface {
	GetByID(id uint) (*models.AnimalType, error)
	GetByCode(code string) (*models.AnimalType, error)
	Create(animalType *models.AnimalType) error
	Update(animalType *models.AnimalType) error
	Delete(id uint) error
	List() ([]models.AnimalType, error)
	CountBatches(animalTypeID uint) (int64, error)
}

// GormAnimalTypeRepository GORM 动物种类仓储实现
type GormAnimalTypeRepository struct {
	db *gorm.DB
}

// NewAnimalTypeRepository 创建动物种类仓储
func NewAnimalTypeRepository(db *gorm.DB) *GormAnimalTypeRepository {
	return &GormAnimalTypeRepository{db: db}
}

// GetByID 按ID获取动物种类
func (r *GormAnimalTypeRepository) GetByID(id uint) (*models.AnimalType, error) {
	if id == 0 {
		return nil, nil
	}
	var animalType models.AnimalType
	if err := r.db.First(&animalType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &animalType, nil
}

// GetByCode 按编码获取动物种类
func (r *GormAnimalTypeRepository) GetByCode(code string) (*models.AnimalType, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	var animalType models.AnimalType
	if err := r.db.Where("code = ?", code).First(&animalType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &animalType, nil
}

// Create 创建动物种类
func (r *GormAnimalTypeRepository) Create(animalType *models.AnimalType) error {
	return r.db.Create(animalType).Error
}

// Update 更新动物种类
func (r *GormAnimalTypeRepository) Update(animalType *models.AnimalType) error {
	return r.db.Save(animalType).Error
}

// Delete 删除动物种类（被批次引用时由服务层拦截）
func (r *GormAnimalTypeRepository) Delete(id uint) error {
	return r.db.Delete(&models.AnimalType{}, id).Error
}

// List 查询全部动物种类
func (r *GormAnimalTypeRepository) List() ([]models.AnimalType, error) {
	var animalTypes []models.AnimalType
	if err := r.db.Order("code asc").Find(&animalTypes).Error; err != nil {
		return nil, err
	}
	return animalTypes, nil
}

// CountBatches 统计引用该种类的批次数量
func (r *GormAnimalTypeRepository) CountBatches(animalTypeID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Batch{}).Where("animal_type_id = ?", animalTypeID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

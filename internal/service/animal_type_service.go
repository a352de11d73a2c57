package service

import (
	"strings"

	"github.com/farmstock-next/internal/models"
	"github.com/farmstock-next/internal/repository"
)

// AnimalTypeService 动物种类业务服务
type AnimalTypeService struct {
	repo repository.AnimalTypeRepository
}

// NewAnimalTypeService 创建动物种类服务
func NewAnimalTypeService(repo repository.AnimalTypeRepository) *AnimalTypeService {
	return &AnimalTypeService{repo: repo}
}

// AnimalTypeInput 创建/更新动物种类输入
type AnimalTypeInput struct {
	Code string
	Name string
}

// List 获取全部动物种类
func (s *AnimalTypeService) List() ([]models.AnimalType, error) {
	return s.repo.List()
}

// GetByID 获取动物种类详情
func (s *AnimalTypeService) GetByID(id uint) (*models.AnimalType, error) {
	animalType, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if animalType == nil {
		return nil, ErrAnimalTypeNotFound
	}
	return animalType, nil
}

// Create 创建动物种类
func (s *AnimalTypeService) Create(input AnimalTypeInput) (*models.AnimalType, error) {
	code := strings.ToLower(strings.TrimSpace(input.Code))
	name := strings.TrimSpace(input.Name)
	if code == "" || name == "" {
		return nil, ErrAnimalTypeInvalid
	}

	exist, err := s.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrAnimalTypeCodeTaken
	}

	animalType := &models.AnimalType{
		Code: code,
		Name: name,
	}
	if err := s.repo.Create(animalType); err != nil {
		return nil, err
	}
	return animalType, nil
}

// Update 更新动物种类
func (s *AnimalTypeService) Update(id uint, input AnimalTypeInput) (*models.AnimalType, error) {
	animalType, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if animalType == nil {
		return nil, ErrAnimalTypeNotFound
	}

	code := strings.ToLower(strings.TrimSpace(input.Code))
	name := strings.TrimSpace(input.Name)
	if code == "" || name == "" {
		return nil, ErrAnimalTypeInvalid
	}

	if code != animalType.Code {
		exist, err := s.repo.GetByCode(code)
		if err != nil {
			return nil, err
		}
		if exist != nil && exist.ID != animalType.ID {
			return nil, ErrAnimalTypeCodeTaken
		}
	}

	animalType.Code = code
	animalType.Name = name
	if err := s.repo.Update(animalType); err != nil {
		return nil, err
	}
	return animalType, nil
}

// Delete 删除动物种类（被批次引用时拒绝）
func (s *AnimalTypeService) Delete(id uint) error {
	animalType, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if animalType == nil {
		return ErrAnimalTypeNotFound
	}

	count, err := s.repo.CountBatches(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAnimalTypeInUse
	}
	return s.repo.Delete(id)
}

package service

import (
	"github.com/farmstock-next/internal/constants"
	"github.com/farmstock-next/internal/models"
	"github.com/farmstock-next/internal/repository"
)

// UserService 用户管理服务（仅管理员使用）
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService 创建用户管理服务
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List 分页查询用户
func (s *UserService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// GetByID 获取用户详情
func (s *UserService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// SetRole 调整用户角色
func (s *UserService) SetRole(id uint, role string) (*models.User, error) {
	if role != constants.UserRoleAdmin && role != constants.UserRoleStaff {
		return nil, ErrInvalidRole
	}
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetStatus 启用/禁用用户
func (s *UserService) SetStatus(id uint, status string) (*models.User, error) {
	if status != constants.UserStatusActive && status != constants.UserStatusDisabled {
		return nil, ErrInvalidStatus
	}
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.Status = status
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

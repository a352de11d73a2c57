package service

import "errors"

// 认证相关错误
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserDisabled       = errors.New("user is disabled")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrWeakPassword       = errors.New("password too weak")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidEmail       = errors.New("email invalid")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidRole        = errors.New("role invalid")
	ErrInvalidStatus      = errors.New("status invalid")
)

// 动物种类相关错误
var (
	ErrAnimalTypeNotFound  = errors.New("animal type not found")
	ErrAnimalTypeCodeTaken = errors.New("animal type code already exists")
	ErrAnimalTypeInUse     = errors.New("animal type is referenced by batches")
	ErrAnimalTypeInvalid   = errors.New("animal type name or code invalid")
)

// 批次相关错误
var (
	ErrBatchNotFound     = errors.New("batch not found")
	ErrSerialNumberTaken = errors.New("serial number already exists")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidArrival    = errors.New("arrival date invalid")
	ErrBatchAlreadyMoved = errors.New("batch already moved to shop")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidBags       = errors.New("bags must be positive")
)

// 死亡记录相关错误
var (
	ErrMortalityNotFound = errors.New("mortality record not found")
	ErrInvalidDeathCount = errors.New("death count must be positive")
)

// 商店条目相关错误
var (
	ErrShopItemNotFound = errors.New("shop item not found")
	ErrPriceInvalid     = errors.New("selling price invalid")
	ErrPriceBelowCost   = errors.New("selling price must exceed unit cost")
)

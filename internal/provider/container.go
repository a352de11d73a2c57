package provider

import (
	"github.com/farmstock-next/internal/authz"
	"github.com/farmstock-next/internal/cache"
	"github.com/farmstock-next/internal/config"
	"github.com/farmstock-next/internal/logger"
	"github.com/farmstock-next/internal/models"
	"github.com/farmstock-next/internal/queue"
	"github.com/farmstock-next/internal/repository"
	"github.com/farmstock-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo        repository.UserRepository
	AnimalTypeRepo  repository.AnimalTypeRepository
	BatchRepo       repository.BatchRepository
	ExpenseRepo     repository.ExpenseRepository
	FeedingRepo     repository.FeedingRepository
	MortalityRepo   repository.MortalityRepository
	ShopItemRepo    repository.ShopItemRepository
	ActivityLogRepo repository.ActivityLogRepository

	// Services
	AuthzService      *authz.Service
	AuthService       *service.AuthService
	UserService       *service.UserService
	AnimalTypeService *service.AnimalTypeService
	BatchService      *service.BatchService
	MortalityService  *service.MortalityService
	ShopService       *service.ShopService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.AnimalTypeRepo = repository.NewAnimalTypeRepository(db)
	c.BatchRepo = repository.NewBatchRepository(db)
	c.ExpenseRepo = repository.NewExpenseRepository(db)
	c.FeedingRepo = repository.NewFeedingRepository(db)
	c.MortalityRepo = repository.NewMortalityRepository(db)
	c.ShopItemRepo = repository.NewShopItemRepository(db)
	c.ActivityLogRepo = repository.NewActivityLogRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.UserService = service.NewUserService(c.UserRepo)
	c.AnimalTypeService = service.NewAnimalTypeService(c.AnimalTypeRepo)
	c.BatchService = service.NewBatchService(
		c.BatchRepo,
		c.AnimalTypeRepo,
		c.ExpenseRepo,
		c.FeedingRepo,
		c.ShopItemRepo,
		c.QueueClient,
	)
	c.MortalityService = service.NewMortalityService(c.MortalityRepo, c.BatchRepo, c.QueueClient)
	c.ShopService = service.NewShopService(c.ShopItemRepo, c.BatchRepo)
}

package router

import (
	"fmt"
	"strings"

	"github.com/farmstock-next/internal/cache"
	"github.com/farmstock-next/internal/config"
	adminhandlers "github.com/farmstock-next/internal/http/handlers/admin"
	publichandlers "github.com/farmstock-next/internal/http/handlers/public"
	"github.com/farmstock-next/internal/logger"
	"github.com/farmstock-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "fs"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// 认证接口（无需鉴权）
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), publicHandler.Login)
		}

		// 业务接口（需鉴权，按角色策略放行）
		authorized := apiV1.Group("")
		authorized.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), RBACMiddleware(c.AuthzService))
		{
			authorized.GET("/profile", publicHandler.Profile)

			// 批次与台账
			authorized.POST("/batches", publicHandler.CreateBatch)
			authorized.GET("/batches", publicHandler.ListBatches)
			authorized.GET("/batches/:id", publicHandler.GetBatch)
			authorized.GET("/batches/:id/totals", publicHandler.GetBatchTotals)
			authorized.POST("/batches/:id/expenses", publicHandler.AddExpense)
			authorized.GET("/batches/:id/expenses", publicHandler.ListExpenses)
			authorized.POST("/batches/:id/feedings", publicHandler.AddFeeding)
			authorized.GET("/batches/:id/feedings", publicHandler.ListFeeding)

			// 死亡记录
			authorized.POST("/batches/:id/mortalities", publicHandler.CreateMortality)
			authorized.GET("/batches/:id/mortalities", publicHandler.ListBatchMortalities)
			authorized.GET("/mortalities", publicHandler.ListMortalities)
			authorized.GET("/mortalities/:id", publicHandler.GetMortality)

			// 基础数据与商店
			authorized.GET("/animal-types", publicHandler.ListAnimalTypes)
			authorized.GET("/animal-types/:id", publicHandler.GetAnimalType)
			authorized.GET("/shop-items", publicHandler.ListShopItems)
			authorized.GET("/shop-items/:id", publicHandler.GetShopItem)
			authorized.GET("/activity-logs", publicHandler.ListActivityLogs)

			// 管理操作（策略仅对 admin 开放）
			authorized.POST("/batches/:id/move-to-shop", adminHandler.MoveBatchToShop)
			authorized.POST("/mortalities/:id/approve", adminHandler.ApproveMortality)
			authorized.PUT("/shop-items/:id/price", adminHandler.SetShopItemPrice)
			authorized.POST("/animal-types", adminHandler.CreateAnimalType)
			authorized.PUT("/animal-types/:id", adminHandler.UpdateAnimalType)
			authorized.DELETE("/animal-types/:id", adminHandler.DeleteAnimalType)
			authorized.GET("/users", adminHandler.ListUsers)
			authorized.PUT("/users/:id/role", adminHandler.SetUserRole)
			authorized.PUT("/users/:id/status", adminHandler.SetUserStatus)
		}
	}

	return r
}

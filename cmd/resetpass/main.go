package main

import (
	"flag"
	"strings"

	"github.com/farmstock-next/internal/config"
	"github.com/farmstock-next/internal/logger"
	"github.com/farmstock-next/internal/models"
	"github.com/farmstock-next/internal/repository"
	"github.com/farmstock-next/internal/service"
)

func main() {
	var username string
	var password string
	flag.StringVar(&username, "username", "", "要重置密码的用户名")
	flag.StringVar(&password, "password", "", "新密码")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if strings.TrimSpace(username) == "" || password == "" {
		stdLog.Fatalf("用法: resetpass -username <用户名> -password <新密码>")
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}

	authService := service.NewAuthService(cfg, repository.NewUserRepository(models.DB))
	if err := authService.ResetPassword(username, password); err != nil {
		stdLog.Fatalf("重置密码失败: %v", err)
	}
	stdLog.Printf("用户 %s 密码已重置", username)
}

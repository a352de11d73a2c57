package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/farmstock-next/internal/config"
)

// 登录失败计数。Redis 未启用时全部退化为放行。

func loginFailKey(username string) string {
	return fmt.Sprintf("login_fail:%s", strings.ToLower(strings.TrimSpace(username)))
}

func loginBlockKey(username string) string {
	return fmt.Sprintf("login_block:%s", strings.ToLower(strings.TrimSpace(username)))
}

// IsLoginBlocked 判断账号是否处于登录封禁期
func IsLoginBlocked(ctx context.Context, username string) (bool, error) {
	if !Enabled() {
		return false, nil
	}
	n, err := redisClient.Exists(ctx, buildKey(loginBlockKey(username))).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RegisterLoginFailure 记录一次登录失败，超过阈值则封禁
func RegisterLoginFailure(ctx context.Context, username string, policy config.LoginRateLimitConfig) error {
	if !Enabled() {
		return nil
	}
	window := time.Duration(policy.WindowSeconds) * time.Second
	if window <= 0 {
		window = 5 * time.Minute
	}
	block := time.Duration(policy.BlockSeconds) * time.Second
	if block <= 0 {
		block = 15 * time.Minute
	}
	maxAttempts := policy.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}

	key := buildKey(loginFailKey(username))
	count, err := redisClient.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		if err := redisClient.Expire(ctx, key, window).Err(); err != nil {
			return err
		}
	}
	if count >= int64(maxAttempts) {
		return redisClient.Set(ctx, buildKey(loginBlockKey(username)), 1, block).Err()
	}
	return nil
}

// ClearLoginFailures 登录成功后清除失败计数
func ClearLoginFailures(ctx context.Context, username string) error {
	if !Enabled() {
		return nil
	}
	return redisClient.Del(ctx,
		buildKey(loginFailKey(username)),
		buildKey(loginBlockKey(username)),
	).Err()
}

package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Msahu05/smart-campus-comms/pkg/redis"
	"github.com/Msahu05/smart-campus-comms/pkg/response"
)

// LoginRateLimit 登录/注册接口限流中间件
// 按 客户端IP + 路由 计数，窗口固定 1 分钟
// rdb 为 nil 或 Redis 出错时降级放行（与 JWTAuth 黑名单策略一致）
func LoginRateLimit(rdb *redis.Client, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || perMinute <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:auth:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, perMinute, time.Minute)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "请求过于频繁，请稍后再试")
			c.Abort()
			return
		}

		c.Next()
	}
}

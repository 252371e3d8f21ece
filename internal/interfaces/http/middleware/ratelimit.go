package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/TeodorSim/TransfIT/internal/shared/utils"
)

// loginRateKeyPrefix scopes the counters to the OAuth initiate route,
// the only endpoint a browser can be provoked into hammering.
const loginRateKeyPrefix = "transfit:ratelimit:login"

// RateLimiter caps how often a single IP may start the OAuth flow,
// using a fixed-window counter in Redis. Counters live in Redis
// rather than process memory so the cap holds across instances.
type RateLimiter struct {
	redisClient *redis.Client
	limit       int
	window      time.Duration
}

// NewRateLimiter creates a limiter allowing limit requests per window
// per client IP.
func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		limit:       limit,
		window:      window,
	}
}

// Limit returns the enforcing middleware. When Redis is down the
// limiter admits everything: losing rate limiting is preferable to
// losing logins.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		bucket := time.Now().Unix() / int64(rl.window.Seconds())
		key := fmt.Sprintf("%s:%s:%d", loginRateKeyPrefix, c.ClientIP(), bucket)

		ctx := context.Background()

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.Next()
			return
		}
		if count == 1 {
			// First hit in this window owns setting the expiry.
			rl.redisClient.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const idempotencyKeyPrefix = "idempotency:"

// Idempotency replays the cached response of a POST/PUT/PATCH request that
// carries an already-seen X-Correlation-ID. Only 2xx responses are cached.
func Idempotency(redisClient *redis.Client, ttl time.Duration, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodPost && c.Method() != fiber.MethodPatch && c.Method() != fiber.MethodPut {
			return c.Next()
		}

		correlationID := c.Get("X-Correlation-ID")
		if correlationID == "" {
			return c.Next()
		}

		key := fmt.Sprintf("%s%s:%s", idempotencyKeyPrefix, c.Path(), correlationID)

		cached, err := redisClient.Get(c.UserContext(), key).Bytes()
		if err == nil && len(cached) > 0 {
			c.Set("X-Idempotent-Replay", "true")
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(cached)
		}
		if err != nil && err != redis.Nil {
			logger.Warn("idempotency lookup failed", zap.String("key", key), zap.Error(err))
		}

		if err := c.Next(); err != nil {
			return err
		}

		statusCode := c.Response().StatusCode()
		if statusCode < 200 || statusCode >= 300 {
			return nil
		}

		// fasthttp reuses the response buffer after the handler returns
		body := append([]byte(nil), c.Response().Body()...)
		if len(body) == 0 {
			return nil
		}

		setCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := redisClient.Set(setCtx, key, body, ttl).Err(); err != nil {
			logger.Warn("idempotency store failed", zap.String("key", key), zap.Error(err))
		}

		return nil
	}
}

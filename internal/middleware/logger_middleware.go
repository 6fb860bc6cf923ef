package middleware

import (
	"time"

	"foodgram/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger tags the request with an id, puts a request scoped logger in
// the user context and writes one access log entry per request.
func (m *middleware) RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		c.Set(HeaderRequestID, requestID)

		ctx := logger.NewRequestIDContext(c.UserContext(), requestID)
		log := logger.Log(ctx).With(
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)
		ctx = logger.NewContext(ctx, log)
		c.SetUserContext(ctx)

		err := c.Next()
		if err != nil {
			// let the app error handler render it so the status is known
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		fields := []zap.Field{
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		switch status := c.Response().StatusCode(); {
		case status >= fiber.StatusInternalServerError:
			log.Error(ctx, "request failed", append(fields, zap.Error(err))...)
		case status >= fiber.StatusBadRequest:
			log.Warn(ctx, "request rejected", fields...)
		default:
			log.Info(ctx, "request completed", fields...)
		}
		return nil
	}
}

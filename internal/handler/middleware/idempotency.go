package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyHeader  = "Idempotency-Key"
	idempotencyLockTTL = 30 * time.Second
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays a previously stored response when the same
// Idempotency-Key is submitted again, and rejects a duplicate that
// arrives while the first one is still in flight.
// Requests without the header pass through untouched.
func Idempotency(rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(idempotencyHeader)
		if key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := "idempotency:" + c.FullPath() + ":" + key
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var cached cachedResponse
			if unmarshalErr := json.Unmarshal([]byte(val), &cached); unmarshalErr == nil {
				c.Abort()
				c.Data(cached.Status, cached.ContentType, cached.Body)
				return
			}
		} else if !errors.Is(err, redis.Nil) {
			// Redis障害時は冪等性保証を諦めてリクエストを通す
			slog.Warn("idempotency cache lookup failed", "error", err)
			c.Next()
			return
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			slog.Warn("idempotency lock acquisition failed", "error", err)
			c.Next()
			return
		}
		if !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"error": gin.H{"message": "A request with this Idempotency-Key is already being processed"},
			})
			return
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status >= 200 && status < 300 {
			cached := cachedResponse{
				Status:      status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			}
			if payload, marshalErr := json.Marshal(cached); marshalErr == nil {
				if setErr := rdb.Set(ctx, cacheKey, payload, ttl).Err(); setErr != nil {
					slog.Warn("idempotency cache store failed", "error", setErr)
				}
			}
		}
		if delErr := rdb.Del(ctx, lockKey).Err(); delErr != nil {
			slog.Warn("idempotency lock release failed", "error", delErr)
		}
	}
}

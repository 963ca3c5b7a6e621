//go:build unit

package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leave-ledger-api/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const idempotencyTTL = 24 * time.Hour

func newIdempotencyRouter(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rdb, mock := redismock.NewClientMock()
	handlerCalls := 0

	router := gin.New()
	router.POST("/api/v1/leave/apply", middleware.Idempotency(rdb, idempotencyTTL), func(c *gin.Context) {
		handlerCalls++
		c.JSON(http.StatusCreated, gin.H{"requestId": "r-1", "message": "Leave request submitted successfully."})
	})
	return router, mock, &handlerCalls
}

func TestIdempotency(t *testing.T) {
	t.Run("ヘッダなしのリクエストはそのまま通過する", func(t *testing.T) {
		router, mock, calls := newIdempotencyRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leave/apply", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("初回リクエストはロックを取得しレスポンスをキャッシュする", func(t *testing.T) {
		router, mock, calls := newIdempotencyRouter(t)

		cacheKey := "idempotency:/api/v1/leave/apply:key-1"
		lockKey := cacheKey + ":lock"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(true)
		mock.Regexp().ExpectSet(cacheKey, `.+`, idempotencyTTL).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leave/apply", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("キャッシュ済みレスポンスはハンドラを呼ばず再生する", func(t *testing.T) {
		router, mock, calls := newIdempotencyRouter(t)

		cached, err := json.Marshal(map[string]any{
			"status":       http.StatusCreated,
			"content_type": "application/json; charset=utf-8",
			"body":         []byte(`{"requestId":"r-1","message":"Leave request submitted successfully."}`),
		})
		require.NoError(t, err)

		cacheKey := "idempotency:/api/v1/leave/apply:key-2"
		mock.ExpectGet(cacheKey).SetVal(string(cached))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leave/apply", nil)
		req.Header.Set("Idempotency-Key", "key-2")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"requestId":"r-1","message":"Leave request submitted successfully."}`, w.Body.String())
		assert.Equal(t, 0, *calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("処理中の重複リクエストは409を返す", func(t *testing.T) {
		router, mock, calls := newIdempotencyRouter(t)

		cacheKey := "idempotency:/api/v1/leave/apply:key-3"
		lockKey := cacheKey + ":lock"
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leave/apply", nil)
		req.Header.Set("Idempotency-Key", "key-3")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, *calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Redis障害時は冪等性を諦めてリクエストを通す", func(t *testing.T) {
		router, mock, calls := newIdempotencyRouter(t)

		cacheKey := "idempotency:/api/v1/leave/apply:key-4"
		mock.ExpectGet(cacheKey).SetErr(assert.AnError)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/leave/apply", nil)
		req.Header.Set("Idempotency-Key", "key-4")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

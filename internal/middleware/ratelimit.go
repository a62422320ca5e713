package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/softcare/softcare-backend/internal/database"
	"github.com/softcare/softcare-backend/internal/services"
	"github.com/softcare/softcare-backend/pkg/clientip"
)

const (
	// RateLimitWindow is the fixed counting window per IP.
	RateLimitWindow = 120 * time.Second
	// RateLimitMaxRequests is the maximum number of requests allowed in the window.
	RateLimitMaxRequests = 100
	// RateLimitKeyPrefix is the Redis key prefix for rate limiting.
	RateLimitKeyPrefix = "ratelimit:"
	// BlockedIPKeyPrefix is the Redis key prefix for blocked IPs.
	BlockedIPKeyPrefix = "blocked_ip:"
	// BlockedIPDuration is how long an IP stays blocked.
	BlockedIPDuration = 24 * time.Hour
)

// RateLimit provides Redis-backed per-IP rate limiting with temporary IP
// blocking. Fails open when Redis is unavailable. Blocking an IP emits a
// SECURITY_VIOLATION audit record.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if database.RedisClient == nil {
			next.ServeHTTP(w, r)
			return
		}

		ipAddress := clientip.RealClientIP(r)
		ctx := context.Background()

		// Check if IP is already blocked
		blockedKey := BlockedIPKeyPrefix + ipAddress
		isBlocked, err := database.RedisClient.Exists(ctx, blockedKey).Result()
		if err == nil && isBlocked > 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"success":false,"message":"Your IP has been temporarily blocked due to excessive requests. Please try again later."}`))
			return
		}

		rateLimitKey := RateLimitKeyPrefix + ipAddress

		currentCount, err := database.RedisClient.Get(ctx, rateLimitKey).Int()
		if err != nil {
			// Key doesn't exist, start with 0
			currentCount = 0
		}
		newCount := currentCount + 1

		if currentCount == 0 {
			// First request in this window
			err = database.RedisClient.Set(ctx, rateLimitKey, "1", RateLimitWindow).Err()
		} else {
			err = database.RedisClient.Incr(ctx, rateLimitKey).Err()
			if err == nil {
				database.RedisClient.Expire(ctx, rateLimitKey, RateLimitWindow)
			}
		}
		if err != nil {
			// If Redis fails, allow the request (fail open)
			next.ServeHTTP(w, r)
			return
		}

		if newCount > RateLimitMaxRequests {
			if blockErr := database.RedisClient.Set(ctx, blockedKey, "1", BlockedIPDuration).Err(); blockErr == nil {
				services.LogSecurityViolation(ctx,
					fmt.Sprintf("IP blocked after exceeding %d requests in %s", RateLimitMaxRequests, RateLimitWindow),
					"", ipAddress)
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(fmt.Sprintf(`{"success":false,"message":"Rate limit exceeded. Your IP has been temporarily blocked. Please try again later.","retry_after":%d}`, int(RateLimitWindow.Seconds()))))
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(RateLimitMaxRequests))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(RateLimitMaxRequests-newCount))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(RateLimitWindow).Unix(), 10))

		next.ServeHTTP(w, r)
	})
}

// ErrRateLimitStoreUnavailable is returned by the block management functions
// when Redis is not connected.
var ErrRateLimitStoreUnavailable = errors.New("rate limit store unavailable")

// UnblockIP removes an IP from the blocked list (admin function).
func UnblockIP(ipAddress string) error {
	if database.RedisClient == nil {
		return ErrRateLimitStoreUnavailable
	}
	ctx := context.Background()
	return database.RedisClient.Del(ctx, BlockedIPKeyPrefix+ipAddress).Err()
}

// IsIPBlocked checks if an IP is currently blocked.
func IsIPBlocked(ipAddress string) (bool, error) {
	if database.RedisClient == nil {
		return false, ErrRateLimitStoreUnavailable
	}
	ctx := context.Background()
	count, err := database.RedisClient.Exists(ctx, BlockedIPKeyPrefix+ipAddress).Result()
	return count > 0, err
}

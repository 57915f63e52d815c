package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware provides basic per-IP rate limiting for the
// credential endpoints.
type RateLimitMiddleware struct {
	requests map[string][]int64 // IP -> timestamps
	mu       sync.Mutex
}

// NewRateLimitMiddleware creates a new rate limiting middleware
func NewRateLimitMiddleware() *RateLimitMiddleware {
	return &RateLimitMiddleware{
		requests: make(map[string][]int64),
	}
}

// RateLimit applies rate limiting based on IP address
func (m *RateLimitMiddleware) RateLimit(maxRequests int, windowSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := getClientIP(c.Request)

		now := time.Now().Unix()
		windowStart := now - int64(windowSeconds)

		m.mu.Lock()

		if timestamps, exists := m.requests[clientIP]; exists {
			var validTimestamps []int64
			for _, ts := range timestamps {
				if ts >= windowStart {
					validTimestamps = append(validTimestamps, ts)
				}
			}
			m.requests[clientIP] = validTimestamps
		}

		if len(m.requests[clientIP]) >= maxRequests {
			m.mu.Unlock()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "demasiados intentos"})
			return
		}

		m.requests[clientIP] = append(m.requests[clientIP], now)
		m.mu.Unlock()

		c.Next()
	}
}

// getClientIP extracts the client IP from the request
func getClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return strings.Split(ip, ",")[0]
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	ip := r.RemoteAddr
	if colonIndex := strings.LastIndex(ip, ":"); colonIndex != -1 {
		ip = ip[:colonIndex]
	}
	return ip
}

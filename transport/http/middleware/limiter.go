package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/metrics"
	"hotel/transport/http/response"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"

	limitedByCache    = "cache"
	limitedByFallback = "fallback"
)

// RateLimit counts requests per client in a fixed Redis window. When Redis
// cannot be reached the client is held to an in-process token bucket with
// the same average rate instead.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			windowSecs := a.config.App.RateLimiter.WindowSeconds

			userAgent := a.getUA(r)
			clientIP := a.getClientIP(r)
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientIP, userAgent)

			count, err := a.cache.Increment(r.Context(), cacheKey, windowSecs)
			if err != nil {
				a.limitInProcess(w, r, next, cacheKey, err)

				return
			}

			if count > int64(maxReqs) {
				metrics.IncRateLimited(limitedByCache)
				response.WithRequestLimitExceeded(w)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(maxReqs)-count), 10))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) limitInProcess(w http.ResponseWriter, r *http.Request, next http.Handler, key string, cause error) {
	log.Warn().Err(cause).Msg("rate limiter cache unavailable, using in-process limiter")

	if !a.fallbackLimiter(key).Allow() {
		metrics.IncRateLimited(limitedByFallback)
		response.WithRequestLimitExceeded(w)

		return
	}

	next.ServeHTTP(w, r)
}

func (a *appMiddleware) fallbackLimiter(key string) *rate.Limiter {
	if limiter, ok := a.fallback.Load(key); ok {
		return limiter.(*rate.Limiter) //nolint:forcetypeassert
	}

	settings := a.config.App.RateLimiter

	perSecond := rate.Inf
	if settings.WindowSeconds > 0 {
		perSecond = rate.Limit(float64(settings.MaxRequests) / float64(settings.WindowSeconds))
	}

	burst := settings.FallbackBurst
	if burst <= 0 {
		burst = max(1, settings.MaxRequests)
	}

	limiter, _ := a.fallback.LoadOrStore(key, rate.NewLimiter(perSecond, burst))

	return limiter.(*rate.Limiter) //nolint:forcetypeassert
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		// first hop is the client
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}

package api

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"

	"github.com/samandr77/microservices/callcenter/internal/entity"
	"github.com/samandr77/microservices/callcenter/internal/service"
	"github.com/samandr77/microservices/callcenter/pkg/config"
	"github.com/samandr77/microservices/callcenter/pkg/logger"
)

var skipLogging = map[string]struct{}{
	"/health":     {},
	"/api/health": {},
	"/metrics":    {},
}

// Prefixes served to the automation agent from any origin.
var bridgePrefixes = []string{"/api/n8n/", "/webhook/n8n/"}

type Middleware struct {
	s          *service.Service
	limiter    *RateLimiter
	apiKey     string
	bridgeOrg  string
	trustProxy bool
}

func NewMiddleware(s *service.Service, n8n config.N8N, limiter *RateLimiter) *Middleware {
	return &Middleware{
		s:          s,
		limiter:    limiter,
		apiKey:     n8n.APIKey,
		bridgeOrg:  n8n.OrganizationID,
		trustProxy: n8n.TrustProxy,
	}
}

// Cors answers preflight requests before any authentication runs.
func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		switch {
		case isBridgePath(r.URL.Path):
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Api-Key, Accept")
		case origin != "":
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")
		default:
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, DELETE, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.Must(uuid.NewV4()).String()
		}

		w.Header().Set("X-Request-Id", requestID)

		ctx := logger.SetRequestID(r.Context(), requestID)
		ctx = logger.SetMethod(ctx, r.Method)
		ctx = logger.SetURL(ctx, r.URL.Path)
		ctx = logger.SetLogType(ctx, "webrequest")
		ctx = logger.SetIP(ctx, entity.IPFromContext(ctx))

		if _, ok := skipLogging[r.URL.Path]; ok {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		slog.InfoContext(ctx, "incoming request")

		next.ServeHTTP(w, r.WithContext(ctx))

		slog.InfoContext(ctx, "request completed", "duration_ms", time.Since(start).Milliseconds())
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			slog.ErrorContext(ctx, "recovered from panic", "error", rec, "stack", string(debug.Stack()))
			SendJSONErr(ctx, w, http.StatusInternalServerError, fmt.Errorf("panic: %v", rec), "internal_error", "internal server error")
		}()

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := removePort(r.RemoteAddr)

		if xForwardedFor := r.Header.Get("X-Forwarded-For"); xForwardedFor != "" {
			for _, part := range splitAndTrim(xForwardedFor, ",") {
				part = removePort(part)
				if isValidIP(part) {
					ip = part
					break
				}
			}
		}

		if xRealIP := r.Header.Get("X-Real-IP"); xRealIP != "" {
			xRealIP = removePort(xRealIP)
			if isValidIP(xRealIP) {
				ip = xRealIP
			}
		}

		if !isValidIP(ip) {
			slog.Warn("invalid IP detected, using fallback", "ip", ip, "remote_addr", r.RemoteAddr)
			ip = "unknown"
		}

		next.ServeHTTP(w, r.WithContext(entity.SetIPToContext(r.Context(), ip)))
	})
}

// BearerAuth requires a valid session token.
func (m *Middleware) BearerAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "unauthorized", "authentication required")
			return
		}

		user, err := m.s.Authenticate(ctx, token)
		if err != nil {
			SendServiceErr(ctx, w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(ctx, user)))
	})
}

// OptionalAuth attaches the session user when one is presented. The token may
// also arrive as the access_token query parameter, since authorize links are
// opened by the browser directly.
func (m *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, err := request.OAuth2Extractor.ExtractToken(r)
		if err != nil {
			if !errors.Is(err, request.ErrNoTokenInRequest) {
				slog.WarnContext(ctx, "extract session token", "error", err)
			}

			next.ServeHTTP(w, r)

			return
		}

		user, err := m.s.Authenticate(ctx, token)
		if err != nil {
			slog.WarnContext(ctx, "ignoring session token", "error", err)
			next.ServeHTTP(w, r)

			return
		}

		next.ServeHTTP(w, r.WithContext(withUser(ctx, user)))
	})
}

// RequirePermission runs after BearerAuth.
func (m *Middleware) RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := entity.UserFromContext(ctx)
			if err != nil {
				SendServiceErr(ctx, w, err)
				return
			}

			if !entity.HasPermission(user, permission) {
				SendJSONErr(ctx, w, http.StatusForbidden, nil, "forbidden", "missing permission "+permission)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// APIKeyAuth accepts the bridge key from x-api-key or a bearer header. An
// empty configured key rejects every request.
func (m *Middleware) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.SetLogType(r.Context(), "n8n")

		key := r.Header.Get("X-Api-Key")
		if key == "" {
			key, _ = request.BearerExtractor{}.ExtractToken(r)
		}

		if m.apiKey == "" || key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			SendJSONErr(ctx, w, http.StatusUnauthorized, nil, "unauthorized", "invalid or missing API key")
			return
		}

		ctx = entity.SetOrganizationToContext(ctx, m.bridgeOrg)
		ctx = logger.SetOrganizationID(ctx, m.bridgeOrg)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RateLimit throttles per peer address, or per forwarded client IP when the
// proxy is trusted. WithIP must run first.
func (m *Middleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		key := removePort(r.RemoteAddr)
		if m.trustProxy {
			key = entity.IPFromContext(ctx)
		}

		if !m.limiter.Allow(key) {
			w.Header().Set("Retry-After", "1")
			SendJSONErr(ctx, w, http.StatusTooManyRequests, nil, "rate_limited", "too many requests")

			return
		}

		next.ServeHTTP(w, r)
	})
}

func withUser(ctx context.Context, user entity.User) context.Context {
	ctx = entity.SetUserToContext(ctx, user)
	ctx = logger.SetUserID(ctx, user.ID)

	return logger.SetOrganizationID(ctx, user.OrganizationID)
}

func isBridgePath(path string) bool {
	for _, prefix := range bridgePrefixes {
		if strings.HasPrefix(path, prefix) || path == strings.TrimSuffix(prefix, "/") {
			return true
		}
	}

	return false
}

func removePort(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}

	return host
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	result := []string{}

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

func isValidIP(ip string) bool {
	if ip == "" {
		return false
	}

	return net.ParseIP(ip) != nil
}

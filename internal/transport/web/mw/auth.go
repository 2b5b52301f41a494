package mw

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
)

const userKey ctxKey = "auth_user"

type AuthDeps struct {
	Tokens    domain.TokenManager
	Blacklist domain.TokenBlacklist
	Users     domain.UsersRepo

	// WriteError пишет отказ авторизации; роутер подставляет сюда
	// конвертный врайтер v1 (мидлварь не знает формат ответов —
	// прямой импорт v1 дал бы цикл)
	WriteError func(w http.ResponseWriter, r *http.Request, err error)
}

func (d AuthDeps) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if d.WriteError != nil {
		d.WriteError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": err.Error()})
}

// resolve превращает сырой токен в пользователя: parse → blacklist → БД
func resolve(r *http.Request, deps AuthDeps, raw string) (domain.User, error) {
	claims, err := deps.Tokens.Parse(r.Context(), raw)
	if err != nil {
		return domain.User{}, domain.ErrAuthInvalid
	}
	if revoked, _ := deps.Blacklist.IsRevoked(r.Context(), claims.JTI); revoked {
		return domain.User{}, domain.ErrAuthInvalid
	}
	u, err := deps.Users.UserByID(r.Context(), claims.UserID)
	if err != nil {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

// OptionalAuth — для ws-апгрейда: невалидный или отсутствующий токен
// не рубит запрос, владелец просто останется "anonymous"
func OptionalAuth(deps AuthDeps, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := ExtractToken(r)
		if raw == "" {
			next.ServeHTTP(w, r) // без пользователя
			return
		}
		u, err := resolve(r, deps, raw)
		if err != nil {
			next.ServeHTTP(w, r) // не валидный — идём как неавторизованный
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

func RequireAuth(deps AuthDeps, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h := r.Header.Get("Authorization"); h != "" && extractBearer(h) == "" {
			deps.writeError(w, r, domain.ErrAuthInvalid)
			return
		}
		raw := ExtractToken(r)
		if raw == "" {
			deps.writeError(w, r, domain.ErrAuthMissing)
			return
		}
		u, err := resolve(r, deps, raw)
		if err != nil {
			deps.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

// WithUser кладёт разрешённого пользователя в контекст запроса
func WithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

func UserFromCtx(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey).(domain.User)
	return u, ok
}

// ExtractToken: Authorization: Bearer ..., затем query-параметр token (для ws)
func ExtractToken(r *http.Request) string {
	if t := extractBearer(r.Header.Get("Authorization")); t != "" {
		return t
	}
	return r.URL.Query().Get("token")
}

func extractBearer(h string) string {
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}


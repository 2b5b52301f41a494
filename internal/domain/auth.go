package domain

import (
	"context"
	"time"
)

// Разрешение идентичности по bearer-токену.
// Выпуск токенов и логин — внешняя система; здесь только парсинг и ревокация.

type Token = string

type TokenClaims struct {
	JTI       string // уникальный id токена
	UserID    UserID
	Login     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Управление токенами (JWT, реализация в internal/auth)
type TokenManager interface {
	Issue(ctx context.Context, u User, ttl time.Duration) (Token, TokenClaims, error)
	Parse(ctx context.Context, t Token) (TokenClaims, error)
}

// Блэклист/ревокация токенов (Redis)
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, exp time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Поиск пользователя, которому принадлежит токен
type UsersRepo interface {
	Close()
	Ping(context.Context) error
	UserByID(ctx context.Context, id UserID) (User, error)
}

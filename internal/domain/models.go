package domain

import (
	"time"

	"github.com/google/uuid"
)

// Базовые идентификаторы
type UserID = uuid.UUID

// Владелец, который не удалось разрешить по токену
const AnonymousOwner = "anonymous"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Пользователь (пароли/логин — вне этого сервиса)
type User struct {
	ID        UserID    `json:"id"`
	Login     string    `json:"login"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Elevated — роль, которой разрешено писать в чужие слоты
func (u User) Elevated() bool { return u.Role == RoleAdmin }

// Логический слот медиа для владельца
type FieldType string

const (
	FieldMain      FieldType = "main"
	FieldDashboard FieldType = "dashboard"
	FieldWelcome   FieldType = "welcome"
)

// ParseFieldType нормализует строку слота; неизвестные схлопываются в main
func ParseFieldType(s string) FieldType {
	switch FieldType(s) {
	case FieldMain, FieldDashboard, FieldWelcome:
		return FieldType(s)
	default:
		return FieldMain
	}
}

// Сохранённый медиафайл. Data в БД лежит как base64-текст,
// наружу всегда отдаём уже декодированные байты.
type MediaRecord struct {
	Filename  string    `json:"filename"`
	Data      []byte    `json:"-"`
	Mimetype  string    `json:"mimetype"`
	Size      int64     `json:"size"`
	OwnerID   string    `json:"owner_id"`
	FieldType FieldType `json:"field_type"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

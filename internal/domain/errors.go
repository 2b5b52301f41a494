package domain

import "errors"

// Бизнес-ошибки (маппятся на HTTP коды в v1.MapDomainError)
var (
	ErrBadParams    = errors.New("bad_params")          // 400
	ErrAuthMissing  = errors.New("auth_missing")        // 401
	ErrAuthInvalid  = errors.New("auth_invalid_format") // 401
	ErrUserNotFound = errors.New("user_not_found")      // 401
	ErrForbidden    = errors.New("forbidden")           // 403
	ErrNotFound     = errors.New("not_found")           // 404: «нет записи» и «не твоя» намеренно неразличимы
	ErrInvalidType  = errors.New("invalid_type")        // 400: слот/mimetype вне политики
	ErrTooLarge     = errors.New("too_large")           // 400: размер сверх лимита слота
	ErrReadFailure  = errors.New("read_failure")        // 400: тело не дочитали
	ErrStoreFailure = errors.New("store_failure")       // 500
	ErrInvalidRange = errors.New("invalid_range")       // 416
	ErrUnexpected   = errors.New("unexpected")          // 500
)

package domain

import (
	"context"
	"fmt"
	"path"
	"strings"
)

// Политика слота: допустимые mimetype и потолок размера.
type MediaPolicy struct {
	MaxBytes int64
	Allowed  map[string]struct{}
}

func (p MediaPolicy) Accepts(mime string) bool {
	_, ok := p.Allowed[strings.ToLower(mime)]
	return ok
}

const (
	MiB           = int64(1) << 20
	imageMaxBytes = 5 * MiB
	videoMaxBytes = 50 * MiB
)

var imageMimetypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

var videoMimetypes = map[string]struct{}{
	"video/mp4":       {},
	"video/webm":      {},
	"video/quicktime": {},
}

// PolicyFor возвращает политику слота.
// main/dashboard — только картинки до 5 MiB;
// welcome — картинки и видео под общим потолком 50 MiB.
func PolicyFor(ft FieldType) MediaPolicy {
	switch ft {
	case FieldWelcome:
		allowed := make(map[string]struct{}, len(imageMimetypes)+len(videoMimetypes))
		for m := range imageMimetypes {
			allowed[m] = struct{}{}
		}
		for m := range videoMimetypes {
			allowed[m] = struct{}{}
		}
		return MediaPolicy{MaxBytes: videoMaxBytes, Allowed: allowed}
	default:
		return MediaPolicy{MaxBytes: imageMaxBytes, Allowed: imageMimetypes}
	}
}

var mimeExtensions = map[string]string{
	"image/jpeg":      "jpg",
	"image/jpg":       "jpg",
	"image/png":       "png",
	"image/gif":       "gif",
	"image/webp":      "webp",
	"video/mp4":       "mp4",
	"video/webm":      "webm",
	"video/quicktime": "mov",
}

// ExtensionFor: таблица mimetype→ext, затем расширение исходного имени, затем jpg
func ExtensionFor(mime, declaredName string) string {
	if ext, ok := mimeExtensions[strings.ToLower(mime)]; ok {
		return ext
	}
	if ext := strings.TrimPrefix(path.Ext(declaredName), "."); ext != "" {
		return strings.ToLower(ext)
	}
	return "jpg"
}

// Каноническое имя файла — стабильное и угадываемое, не секрет
func CanonicalFilename(ownerID string, ft FieldType, ext string) string {
	return fmt.Sprintf("%s_%s.%s", ownerID, ft, ext)
}

// Префикс для delete-before-insert: чистим любое старое расширение
func FilenamePrefix(ownerID string, ft FieldType) string {
	return fmt.Sprintf("%s_%s.", ownerID, ft)
}

// MediaRepo — персистентность медиазаписей.
// Инвариант «одна запись на (owner, field)» держится на Replace.
type MediaRepo interface {
	// Replace удаляет все записи с именем на prefix и вставляет rec —
	// в одной транзакции, читатели не видят пустого окна.
	Replace(ctx context.Context, prefix string, rec MediaRecord) (MediaRecord, error)
	// ByFilename — точное совпадение имени
	ByFilename(ctx context.Context, filename string) (MediaRecord, error)
	// FirstByPrefix — первое совпадение по префиксу (клиент знает имя без расширения)
	FirstByPrefix(ctx context.Context, prefix string) (MediaRecord, error)
	// DeleteOwned удаляет запись, сверяя владельца; промах — ErrNotFound
	DeleteOwned(ctx context.Context, filename, ownerID string) error
}

package upload

import (
	"log"
	"strings"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/media"
)

type Handler struct {
	Log   *log.Logger
	Media *media.Service
	Cache domain.Cache

	// База для ссылок в ответе загрузки, например https://cdn.example.com
	PublicBaseURL string
	// TTL кэша метаданных для /exists, секунд
	MetaTTL int
}

// metaCacheKeys — ключи кэша /exists, задетые файлом: мета кэшируется
// под запрошенным именем, а клиент может спрашивать и полное имя,
// и логическое (без расширения). Гасим оба.
func metaCacheKeys(filename string) []string {
	keys := []string{domain.CacheKeyMediaMeta(filename)}
	if i := strings.LastIndexByte(filename, '.'); i > 0 {
		keys = append(keys, domain.CacheKeyMediaMeta(filename[:i]))
	}
	return keys
}

package domain

import (
	"fmt"
	"regexp"
	"strconv"
)

// Разбор HTTP Range для отдачи медиа кусками.
// Политика нарочно мягкая: непохожий на bytes=A-B заголовок
// трактуем как отсутствующий и отдаём полное тело.

var bytesRangeRe = regexp.MustCompile(`^bytes=(\d*)-(\d*)$`)

// Включающие границы [Start, End], уже согласованные с размером записи
type ByteRange struct {
	Start int64
	End   int64
}

func (r ByteRange) Len() int64 { return r.End - r.Start + 1 }

func (r ByteRange) ContentRange(size int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, size)
}

// Заголовок для 416
func UnsatisfiableRange(size int64) string {
	return fmt.Sprintf("bytes */%d", size)
}

// ResolveRange согласует заголовок с размером записи.
// Возврат (nil, nil) — отдать полное тело; ErrInvalidRange — ответить 416.
// Пустой start → 0, пустой end → size-1; end клампится к size-1.
func ResolveRange(header string, size int64) (*ByteRange, error) {
	if header == "" {
		return nil, nil
	}
	m := bytesRangeRe.FindStringSubmatch(header)
	if m == nil {
		return nil, nil
	}

	start := int64(0)
	if m[1] != "" {
		v, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, ErrInvalidRange
		}
		start = v
	}
	end := size - 1
	if m[2] != "" {
		v, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return nil, ErrInvalidRange
		}
		end = v
	}

	if start > end || start >= size {
		return nil, ErrInvalidRange
	}
	if end > size-1 {
		end = size - 1
	}
	return &ByteRange{Start: start, End: end}, nil
}

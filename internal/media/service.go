package media

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
)

// Service — бизнес-правила медиахранилища: политика слотов, каноническое имя,
// замена delete-before-insert, поиск по точному имени и по префиксу.
type Service struct {
	Log  *log.Logger
	Repo domain.MediaRepo
}

func New(logger *log.Logger, repo domain.MediaRepo) *Service {
	return &Service{Log: logger, Repo: repo}
}

type PutResult struct {
	Filename string
	Size     int64
	Mimetype string
}

// Put валидирует и сохраняет загрузку в слот владельца.
// Все проверки — до какой-либо записи. Replace чистит записи по префиксу
// {owner}_{field}. (самолечение от рассинхрона расширений) и вставляет новую.
func (s *Service) Put(ctx context.Context, ownerID string, ft domain.FieldType, r io.Reader, declaredMime, declaredName string) (PutResult, error) {
	policy := domain.PolicyFor(ft)
	mime := strings.ToLower(strings.TrimSpace(declaredMime))
	if !policy.Accepts(mime) {
		return PutResult{}, domain.ErrInvalidType
	}

	// дочитываем на один байт больше лимита: так отличаем «ровно лимит» от «сверх»
	data, err := io.ReadAll(io.LimitReader(r, policy.MaxBytes+1))
	if err != nil {
		s.Log.Printf("put read: %v", err)
		return PutResult{}, domain.ErrReadFailure
	}
	if int64(len(data)) > policy.MaxBytes {
		return PutResult{}, domain.ErrTooLarge
	}

	ext := domain.ExtensionFor(mime, declaredName)
	filename := domain.CanonicalFilename(ownerID, ft, ext)

	rec := domain.MediaRecord{
		Filename:  filename,
		Data:      data,
		Mimetype:  mime,
		Size:      int64(len(data)),
		OwnerID:   ownerID,
		FieldType: ft,
	}
	stored, err := s.Repo.Replace(ctx, domain.FilenamePrefix(ownerID, ft), rec)
	if err != nil {
		s.Log.Printf("put replace %q: %v", filename, err)
		return PutResult{}, domain.ErrStoreFailure
	}
	s.Log.Printf("put ok owner=%s field=%s file=%s size=%d", ownerID, ft, stored.Filename, stored.Size)
	return PutResult{Filename: stored.Filename, Size: stored.Size, Mimetype: stored.Mimetype}, nil
}

// Get — точное имя, иначе префикс "{filename}." для клиентов,
// знающих логическое имя без расширения.
func (s *Service) Get(ctx context.Context, filename string) (domain.MediaRecord, error) {
	rec, err := s.Repo.ByFilename(ctx, filename)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.Log.Printf("get %q: %v", filename, err)
		return domain.MediaRecord{}, domain.ErrStoreFailure
	}
	rec, err = s.Repo.FirstByPrefix(ctx, filename+".")
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.MediaRecord{}, domain.ErrNotFound
		}
		s.Log.Printf("get prefix %q: %v", filename, err)
		return domain.MediaRecord{}, domain.ErrStoreFailure
	}
	return rec, nil
}

// Delete удаляет запись строго в скоупе владельца.
// «Нет записи» и «не твоя» — один и тот же ErrNotFound, чтобы
// не подсвечивать чужие файлы.
func (s *Service) Delete(ctx context.Context, filename, callerOwnerID string) error {
	if err := s.Repo.DeleteOwned(ctx, filename, callerOwnerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		s.Log.Printf("delete %q: %v", filename, err)
		return domain.ErrStoreFailure
	}
	s.Log.Printf("delete ok owner=%s file=%s", callerOwnerID, filename)
	return nil
}

// ExpectedFilenames — канонические имена слотов владельца (для пробы /upload/test)
func ExpectedFilenames(ownerID string) []string {
	fields := []domain.FieldType{domain.FieldMain, domain.FieldDashboard, domain.FieldWelcome}
	out := make([]string, 0, len(fields))
	for _, ft := range fields {
		out = append(out, domain.CanonicalFilename(ownerID, ft, "jpg"))
	}
	return out
}

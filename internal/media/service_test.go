package media

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
)

// memRepo — карта вместо Postgres; семантика Replace/поиска та же
type memRepo struct {
	records map[string]domain.MediaRecord
}

func newMemRepo() *memRepo { return &memRepo{records: make(map[string]domain.MediaRecord)} }

func (m *memRepo) Replace(_ context.Context, prefix string, rec domain.MediaRecord) (domain.MediaRecord, error) {
	for name := range m.records {
		if strings.HasPrefix(name, prefix) {
			delete(m.records, name)
		}
	}
	now := time.Now().UTC()
	rec.CreatedAt, rec.UpdatedAt = now, now
	m.records[rec.Filename] = rec
	return rec, nil
}

func (m *memRepo) ByFilename(_ context.Context, filename string) (domain.MediaRecord, error) {
	rec, ok := m.records[filename]
	if !ok {
		return domain.MediaRecord{}, domain.ErrNotFound
	}
	return rec, nil
}

func (m *memRepo) FirstByPrefix(_ context.Context, prefix string) (domain.MediaRecord, error) {
	for name, rec := range m.records {
		if strings.HasPrefix(name, prefix) {
			return rec, nil
		}
	}
	return domain.MediaRecord{}, domain.ErrNotFound
}

func (m *memRepo) DeleteOwned(_ context.Context, filename, ownerID string) error {
	rec, ok := m.records[filename]
	if !ok || rec.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(m.records, filename)
	return nil
}

func (m *memRepo) countFor(ownerID string, ft domain.FieldType) int {
	n := 0
	for _, rec := range m.records {
		if rec.OwnerID == ownerID && rec.FieldType == ft {
			n++
		}
	}
	return n
}

func newService(repo domain.MediaRepo) *Service {
	return New(log.New(io.Discard, "", 0), repo)
}

func TestPutStoresCanonicalFilename(t *testing.T) {
	repo := newMemRepo()
	svc := newService(repo)

	res, err := svc.Put(context.Background(), "u1", domain.FieldMain,
		bytes.NewReader([]byte("payload")), "image/png", "vacation.png")
	require.NoError(t, err)
	assert.Equal(t, "u1_main.png", res.Filename)
	assert.Equal(t, int64(7), res.Size)
	assert.Equal(t, "image/png", res.Mimetype)
}

func TestPutKeepsSingleRecordPerSlot(t *testing.T) {
	repo := newMemRepo()
	svc := newService(repo)
	ctx := context.Background()

	// последовательные загрузки с разными расширениями — запись всегда одна
	_, err := svc.Put(ctx, "u1", domain.FieldMain, bytes.NewReader([]byte("a")), "image/png", "a.png")
	require.NoError(t, err)
	_, err = svc.Put(ctx, "u1", domain.FieldMain, bytes.NewReader([]byte("bb")), "image/jpeg", "b.jpg")
	require.NoError(t, err)
	_, err = svc.Put(ctx, "u1", domain.FieldMain, bytes.NewReader([]byte("ccc")), "image/gif", "c.gif")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.countFor("u1", domain.FieldMain))

	rec, err := svc.Get(ctx, "u1_main.gif")
	require.NoError(t, err)
	assert.Equal(t, []byte("ccc"), rec.Data)

	// слоты независимы
	_, err = svc.Put(ctx, "u1", domain.FieldDashboard, bytes.NewReader([]byte("d")), "image/png", "d.png")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.countFor("u1", domain.FieldMain))
	assert.Equal(t, 1, repo.countFor("u1", domain.FieldDashboard))
}

func TestPutRejectsMimeOutsidePolicy(t *testing.T) {
	svc := newService(newMemRepo())

	_, err := svc.Put(context.Background(), "u1", domain.FieldMain,
		bytes.NewReader([]byte("x")), "video/mp4", "clip.mp4")
	assert.ErrorIs(t, err, domain.ErrInvalidType)

	_, err = svc.Put(context.Background(), "u1", domain.FieldDashboard,
		bytes.NewReader([]byte("x")), "application/pdf", "doc.pdf")
	assert.ErrorIs(t, err, domain.ErrInvalidType)
}

func TestPutSizeLimits(t *testing.T) {
	svc := newService(newMemRepo())
	ctx := context.Background()
	sixMiB := bytes.Repeat([]byte("j"), int(6*domain.MiB))

	// 6 MiB JPEG в main — сверх лимита картинок
	_, err := svc.Put(ctx, "u1", domain.FieldMain, bytes.NewReader(sixMiB), "image/jpeg", "big.jpg")
	assert.ErrorIs(t, err, domain.ErrTooLarge)

	// тот же файл в welcome проходит: слот живёт под общим потолком 50 MiB
	res, err := svc.Put(ctx, "u1", domain.FieldWelcome, bytes.NewReader(sixMiB), "image/jpeg", "big.jpg")
	require.NoError(t, err)
	assert.Equal(t, int64(6*domain.MiB), res.Size)

	// ровно на лимите — ещё допустимо
	fiveMiB := bytes.Repeat([]byte("j"), int(5*domain.MiB))
	_, err = svc.Put(ctx, "u2", domain.FieldMain, bytes.NewReader(fiveMiB), "image/jpeg", "edge.jpg")
	require.NoError(t, err)
}

func TestPutVideoInWelcome(t *testing.T) {
	svc := newService(newMemRepo())

	res, err := svc.Put(context.Background(), "u1", domain.FieldWelcome,
		bytes.NewReader([]byte("mov")), "video/quicktime", "intro.mov")
	require.NoError(t, err)
	assert.Equal(t, "u1_welcome.mov", res.Filename)
}

func TestGetFallsBackToPrefix(t *testing.T) {
	svc := newService(newMemRepo())
	ctx := context.Background()

	_, err := svc.Put(ctx, "u1", domain.FieldMain, bytes.NewReader([]byte("x")), "image/webp", "x.webp")
	require.NoError(t, err)

	// клиент знает логическое имя, но не расширение
	rec, err := svc.Get(ctx, "u1_main")
	require.NoError(t, err)
	assert.Equal(t, "u1_main.webp", rec.Filename)

	_, err = svc.Get(ctx, "u9_main")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteIsOwnerScoped(t *testing.T) {
	svc := newService(newMemRepo())
	ctx := context.Background()

	_, err := svc.Put(ctx, "u1", domain.FieldMain, bytes.NewReader([]byte("x")), "image/png", "x.png")
	require.NoError(t, err)

	// чужой и несуществующий неотличимы
	assert.ErrorIs(t, svc.Delete(ctx, "u1_main.png", "intruder"), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "ghost.png", "u1"), domain.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, "u1_main.png", "u1"))
	_, err = svc.Get(ctx, "u1_main.png")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpectedFilenames(t *testing.T) {
	names := ExpectedFilenames("u1")
	assert.Equal(t, []string{"u1_main.jpg", "u1_dashboard.jpg", "u1_welcome.jpg"}, names)
}

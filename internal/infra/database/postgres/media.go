package postgres

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
)

// Медиазаписи. Тело файла лежит в колонке data_b64 как base64-текст;
// наружу репозиторий всегда отдаёт уже декодированные байты.

const mediaColumns = "filename, data_b64, mime_type, size_bytes, owner_id, field_type, created_at, updated_at"

func (r *PGRepo) mediaTable() string { return fmt.Sprintf("%s.media_files", r.schema) }

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike экранирует метасимволы LIKE: префикс имени должен матчиться
// буквально. Канонические имена всегда содержат `_` как разделитель,
// без экранирования он работал бы как «любой символ».
func escapeLike(s string) string { return likeEscaper.Replace(s) }

// Replace удаляет все записи по префиксу имени и вставляет новую —
// в одной транзакции, чтобы читатель не увидел пустого окна между delete и insert.
func (r *PGRepo) Replace(ctx context.Context, prefix string, rec domain.MediaRecord) (domain.MediaRecord, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Printf("Replace begin error: %v", err)
		return domain.MediaRecord{}, err
	}
	defer tx.Rollback(ctx)

	del := r.qb().Delete(r.mediaTable()).
		Where(sq.Like{"filename": escapeLike(prefix) + "%"})
	sqlStr, args, _ := del.ToSql()
	r.logSQL("Replace.delete", sqlStr, args)

	start := time.Now()
	tag, err := tx.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("Replace delete exec error after %s: %v", time.Since(start), err)
		return domain.MediaRecord{}, err
	}
	r.logger.Printf("Replace delete ok in %s prefix=%q rows=%d", time.Since(start), prefix, tag.RowsAffected())

	ins := r.qb().Insert(r.mediaTable()).
		Columns("filename", "data_b64", "mime_type", "size_bytes", "owner_id", "field_type").
		Values(rec.Filename, base64.StdEncoding.EncodeToString(rec.Data), rec.Mimetype, rec.Size, rec.OwnerID, string(rec.FieldType)).
		Suffix("RETURNING filename, mime_type, size_bytes, owner_id, field_type, created_at, updated_at")
	sqlStr, args, _ = ins.ToSql()
	r.logSQL("Replace.insert", sqlStr, args)

	startI := time.Now()
	row := tx.QueryRow(ctx, sqlStr, args...)
	var out domain.MediaRecord
	if err := row.Scan(
		&out.Filename, &out.Mimetype, &out.Size, &out.OwnerID, &out.FieldType,
		&out.CreatedAt, &out.UpdatedAt,
	); err != nil {
		r.logger.Printf("Replace insert scan error after %s: %v", time.Since(startI), err)
		return domain.MediaRecord{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		r.logger.Printf("Replace commit error: %v", err)
		return domain.MediaRecord{}, err
	}
	out.Data = rec.Data
	r.logger.Printf("Replace ok in %s file=%s size=%d", time.Since(startI), out.Filename, out.Size)
	return out, nil
}

func (r *PGRepo) ByFilename(ctx context.Context, filename string) (domain.MediaRecord, error) {
	q := r.qb().Select(mediaColumns).
		From(r.mediaTable()).
		Where(sq.Eq{"filename": filename})
	return r.oneMedia(ctx, "ByFilename", q)
}

// FirstByPrefix — клиент знает логическое имя, но не расширение
func (r *PGRepo) FirstByPrefix(ctx context.Context, prefix string) (domain.MediaRecord, error) {
	q := r.qb().Select(mediaColumns).
		From(r.mediaTable()).
		Where(sq.Like{"filename": escapeLike(prefix) + "%"}).
		OrderBy("updated_at DESC").
		Limit(1)
	return r.oneMedia(ctx, "FirstByPrefix", q)
}

func (r *PGRepo) oneMedia(ctx context.Context, op string, q sq.SelectBuilder) (domain.MediaRecord, error) {
	sqlStr, args, _ := q.ToSql()
	r.logSQL(op, sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var (
		out domain.MediaRecord
		b64 string
	)
	if err := row.Scan(
		&out.Filename, &b64, &out.Mimetype, &out.Size, &out.OwnerID, &out.FieldType,
		&out.CreatedAt, &out.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("%s not found in %s", op, time.Since(start))
			return domain.MediaRecord{}, domain.ErrNotFound
		}
		r.logger.Printf("%s scan error after %s: %v", op, time.Since(start), err)
		return domain.MediaRecord{}, err
	}
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		r.logger.Printf("%s base64 decode error: %v", op, err)
		return domain.MediaRecord{}, err
	}
	out.Data = data
	r.logger.Printf("%s ok in %s file=%s size=%d", op, time.Since(start), out.Filename, out.Size)
	return out, nil
}

// DeleteOwned удаляет запись в скоупе владельца; промах — всегда ErrNotFound
func (r *PGRepo) DeleteOwned(ctx context.Context, filename, ownerID string) error {
	q := r.qb().Delete(r.mediaTable()).
		Where(sq.And{sq.Eq{"filename": filename}, sq.Eq{"owner_id": ownerID}})
	sqlStr, args, _ := q.ToSql()
	r.logSQL("DeleteOwned", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("DeleteOwned exec error after %s: %v", time.Since(start), err)
		return err
	}
	if tag.RowsAffected() == 0 {
		r.logger.Printf("DeleteOwned no rows in %s (absent or not owner)", time.Since(start))
		return domain.ErrNotFound
	}
	r.logger.Printf("DeleteOwned ok in %s file=%s", time.Since(start), filename)
	return nil
}

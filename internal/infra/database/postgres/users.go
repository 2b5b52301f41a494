package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
)

func (r *PGRepo) UserByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	q := r.qb().Select("id", "login", "role", "created_at").
		From(fmt.Sprintf("%s.users", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("UserByID", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var u domain.User
	if err := row.Scan(&u.ID, &u.Login, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("UserByID not found in %s id=%s", time.Since(start), id)
			return domain.User{}, domain.ErrUserNotFound
		}
		r.logger.Printf("UserByID scan error after %s: %v", time.Since(start), err)
		return domain.User{}, err
	}
	r.logger.Printf("UserByID ok in %s id=%s", time.Since(start), u.ID)
	return u, nil
}

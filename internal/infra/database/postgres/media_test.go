package postgres

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLike(t *testing.T) {
	// `_` в канонических именах — разделитель, не «любой символ»
	assert.Equal(t, `john\_doe\_main.`, escapeLike("john_doe_main."))
	assert.Equal(t, `100\%\_sure\\`, escapeLike(`100%_sure\`))
	assert.Equal(t, "plain.", escapeLike("plain."))
	assert.Equal(t, "", escapeLike(""))
}

func TestPrefixQueriesEscapeLikePattern(t *testing.T) {
	r := &PGRepo{schema: "app"}

	del := r.qb().Delete(r.mediaTable()).
		Where(sq.Like{"filename": escapeLike("john_doe_main.") + "%"})
	sqlStr, args, err := del.ToSql()
	require.NoError(t, err)
	assert.Contains(t, sqlStr, "LIKE")
	require.Len(t, args, 1)
	// хвостовой % — наш, остальные метасимволы заэкранированы:
	// паттерн не матчит johnXdoe_main.jpg
	assert.Equal(t, `john\_doe\_main.%`, args[0])

	sel := r.qb().Select(mediaColumns).
		From(r.mediaTable()).
		Where(sq.Like{"filename": escapeLike("u1_main.") + "%"})
	_, args, err = sel.ToSql()
	require.NoError(t, err)
	require.Len(t, args, 1)
	assert.Equal(t, `u1\_main.%`, args[0])
}

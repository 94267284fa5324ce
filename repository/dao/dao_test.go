package dao

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "toolkit.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, InitTables(context.Background(), db))
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteCourseDAO(t *testing.T) {
	ctx := context.Background()
	dao := NewSQLiteCourseDAO(newTestDB(t))

	require.NoError(t, dao.Insert(ctx, Course{Id: "a", Name: "Algebra", Credits: 4, Cutoffs: `{"10":90}`, Marks: `[]`}))
	require.NoError(t, dao.Insert(ctx, Course{Id: "b", Name: "Biology", Credits: 3, Cutoffs: `{}`, Marks: `[]`, Grade: 7}))

	cs, err := dao.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, cs, 2)
	assert.Equal(t, "a", cs[0].Id)
	assert.Equal(t, "b", cs[1].Id)
	assert.NotZero(t, cs[0].Ctime)

	require.NoError(t, dao.Update(ctx, Course{Id: "a", Name: "Linear Algebra", Credits: 5, Cutoffs: `{}`, Marks: `[]`, Grade: 9}))
	c, err := dao.FindById(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "Linear Algebra", c.Name)
	assert.Equal(t, 9, c.Grade)

	assert.ErrorIs(t, dao.Update(ctx, Course{Id: "missing"}), ErrRecordNotFound)
	require.NoError(t, dao.Delete(ctx, "a"))
	assert.ErrorIs(t, dao.Delete(ctx, "a"), ErrRecordNotFound)
	_, err = dao.FindById(ctx, "a")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestSQLitePaletteDAO(t *testing.T) {
	ctx := context.Background()
	dao := NewSQLitePaletteDAO(newTestDB(t))

	require.NoError(t, dao.Insert(ctx, Palette{Id: "p1", Name: "My Palette", Colors: `[]`}))
	updated, err := dao.Modify(ctx, "p1", func(p *Palette) error {
		p.Name = "Warm"
		p.Colors = `["#ff0000"]`
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Warm", updated.Name)
	p, err := dao.FindById(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Warm", p.Name)
	assert.Equal(t, `["#ff0000"]`, p.Colors)

	ps, err := dao.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, ps, 1)

	// fn 出错时回滚
	errBoom := errors.New("boom")
	_, err = dao.Modify(ctx, "p1", func(p *Palette) error {
		p.Name = "Cold"
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)
	p, err = dao.FindById(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Warm", p.Name)

	require.NoError(t, dao.Delete(ctx, "p1"))
	_, err = dao.FindById(ctx, "p1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
	_, err = dao.Modify(ctx, "p1", func(p *Palette) error { return nil })
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestSQLiteHistoryDAO(t *testing.T) {
	ctx := context.Background()
	dao := NewSQLiteHistoryDAO(newTestDB(t))

	for _, w := range []string{"apple", "banana", "cherry", "apple"} {
		require.NoError(t, dao.Touch(ctx, w, 3))
	}
	words, err := dao.FindRecent(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "cherry", "banana"}, words)

	require.NoError(t, dao.Touch(ctx, "date", 3))
	words, err = dao.FindRecent(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, []string{"date", "apple", "cherry"}, words)

	require.NoError(t, dao.Clear(ctx))
	words, err = dao.FindRecent(ctx, 8)
	require.NoError(t, err)
	assert.Empty(t, words)
}

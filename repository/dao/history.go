package dao

import (
	"context"
	"database/sql"
)

type HistoryDAO interface {
	// Touch 记录一次查询，已存在则移到最前面，并只保留最近 limit 条
	Touch(ctx context.Context, word string, limit int) error
	FindRecent(ctx context.Context, limit int) ([]string, error)
	Clear(ctx context.Context) error
}

type SQLiteHistoryDAO struct {
	db *sql.DB
}

func NewSQLiteHistoryDAO(db *sql.DB) HistoryDAO {
	return &SQLiteHistoryDAO{db: db}
}

func (dao *SQLiteHistoryDAO) Touch(ctx context.Context, word string, limit int) error {
	tx, err := dao.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO dictionary_history (word, seq)
		VALUES (?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM dictionary_history))
		ON CONFLICT(word) DO UPDATE SET seq = excluded.seq`, word)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		DELETE FROM dictionary_history WHERE word NOT IN (
			SELECT word FROM dictionary_history ORDER BY seq DESC LIMIT ?
		)`, limit)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (dao *SQLiteHistoryDAO) FindRecent(ctx context.Context, limit int) ([]string, error) {
	rows, err := dao.db.QueryContext(ctx,
		`SELECT word FROM dictionary_history ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]string, 0, limit)
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		res = append(res, w)
	}
	return res, rows.Err()
}

func (dao *SQLiteHistoryDAO) Clear(ctx context.Context) error {
	_, err := dao.db.ExecContext(ctx, `DELETE FROM dictionary_history`)
	return err
}

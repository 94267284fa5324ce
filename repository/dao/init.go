package dao

import (
	"context"
	"database/sql"
	"errors"
)

var ErrRecordNotFound = errors.New("record not found")

const createCoursesTableSQL = `
CREATE TABLE IF NOT EXISTS courses (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT UNIQUE NOT NULL,
	name TEXT NOT NULL,
	credits REAL NOT NULL,
	cutoffs TEXT NOT NULL,
	marks TEXT NOT NULL,
	grade INTEGER NOT NULL DEFAULT 0,
	ctime INTEGER NOT NULL,
	utime INTEGER NOT NULL
);
`

const createPalettesTableSQL = `
CREATE TABLE IF NOT EXISTS palettes (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	id TEXT UNIQUE NOT NULL,
	name TEXT NOT NULL,
	colors TEXT NOT NULL,
	ctime INTEGER NOT NULL,
	utime INTEGER NOT NULL
);
`

const createDictionaryHistoryTableSQL = `
CREATE TABLE IF NOT EXISTS dictionary_history (
	word TEXT PRIMARY KEY,
	seq INTEGER NOT NULL
);
`

// InitTables 建表，没有版本管理，老数据结构变了就直接读不出来
func InitTables(ctx context.Context, db *sql.DB) error {
	for _, stmt := range []string{
		createCoursesTableSQL,
		createPalettesTableSQL,
		createDictionaryHistoryTableSQL,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

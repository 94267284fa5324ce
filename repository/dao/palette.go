package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type PaletteDAO interface {
	Insert(ctx context.Context, p Palette) error
	// Modify 在同一个事务里读出、修改、写回，fn 返回错误时回滚
	Modify(ctx context.Context, id string, fn func(p *Palette) error) (Palette, error)
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (Palette, error)
	FindAll(ctx context.Context) ([]Palette, error)
}

type Palette struct {
	Id     string
	Name   string
	Colors string
	Ctime  int64
	Utime  int64
}

type SQLitePaletteDAO struct {
	db *sql.DB
}

func NewSQLitePaletteDAO(db *sql.DB) PaletteDAO {
	return &SQLitePaletteDAO{db: db}
}

func (dao *SQLitePaletteDAO) Insert(ctx context.Context, p Palette) error {
	now := time.Now().UnixMilli()
	_, err := dao.db.ExecContext(ctx,
		`INSERT INTO palettes (id, name, colors, ctime, utime) VALUES (?, ?, ?, ?, ?)`,
		p.Id, p.Name, p.Colors, now, now)
	if err != nil {
		return fmt.Errorf("insert palette %s: %w", p.Id, err)
	}
	return nil
}

func (dao *SQLitePaletteDAO) Modify(ctx context.Context, id string, fn func(p *Palette) error) (Palette, error) {
	tx, err := dao.db.BeginTx(ctx, nil)
	if err != nil {
		return Palette{}, err
	}
	defer tx.Rollback()

	var p Palette
	err = tx.QueryRowContext(ctx,
		`SELECT id, name, colors, ctime, utime FROM palettes WHERE id = ?`, id).
		Scan(&p.Id, &p.Name, &p.Colors, &p.Ctime, &p.Utime)
	if errors.Is(err, sql.ErrNoRows) {
		return Palette{}, ErrRecordNotFound
	}
	if err != nil {
		return Palette{}, err
	}
	if err = fn(&p); err != nil {
		return Palette{}, err
	}
	p.Id = id
	p.Utime = time.Now().UnixMilli()
	res, err := tx.ExecContext(ctx,
		`UPDATE palettes SET name = ?, colors = ?, utime = ? WHERE id = ?`,
		p.Name, p.Colors, p.Utime, id)
	if err != nil {
		return Palette{}, fmt.Errorf("update palette %s: %w", id, err)
	}
	if err = affected(res); err != nil {
		return Palette{}, err
	}
	return p, tx.Commit()
}

func (dao *SQLitePaletteDAO) Delete(ctx context.Context, id string) error {
	res, err := dao.db.ExecContext(ctx, `DELETE FROM palettes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete palette %s: %w", id, err)
	}
	return affected(res)
}

func (dao *SQLitePaletteDAO) FindById(ctx context.Context, id string) (Palette, error) {
	var p Palette
	err := dao.db.QueryRowContext(ctx,
		`SELECT id, name, colors, ctime, utime FROM palettes WHERE id = ?`, id).
		Scan(&p.Id, &p.Name, &p.Colors, &p.Ctime, &p.Utime)
	if errors.Is(err, sql.ErrNoRows) {
		return Palette{}, ErrRecordNotFound
	}
	return p, err
}

func (dao *SQLitePaletteDAO) FindAll(ctx context.Context) ([]Palette, error) {
	rows, err := dao.db.QueryContext(ctx,
		`SELECT id, name, colors, ctime, utime FROM palettes ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Palette
	for rows.Next() {
		var p Palette
		if err := rows.Scan(&p.Id, &p.Name, &p.Colors, &p.Ctime, &p.Utime); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

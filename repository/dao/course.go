package dao

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type CourseDAO interface {
	Insert(ctx context.Context, c Course) error
	Update(ctx context.Context, c Course) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (Course, error)
	FindAll(ctx context.Context) ([]Course, error)
}

// Course 对应 courses 表，Cutoffs 和 Marks 以 JSON 字符串存储
type Course struct {
	Id      string
	Name    string
	Credits float64
	Cutoffs string
	Marks   string
	Grade   int
	Ctime   int64
	Utime   int64
}

type SQLiteCourseDAO struct {
	db *sql.DB
}

func NewSQLiteCourseDAO(db *sql.DB) CourseDAO {
	return &SQLiteCourseDAO{db: db}
}

func (dao *SQLiteCourseDAO) Insert(ctx context.Context, c Course) error {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	_, err := dao.db.ExecContext(ctx,
		`INSERT INTO courses (id, name, credits, cutoffs, marks, grade, ctime, utime) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Id, c.Name, c.Credits, c.Cutoffs, c.Marks, c.Grade, c.Ctime, c.Utime)
	if err != nil {
		return fmt.Errorf("insert course %s: %w", c.Id, err)
	}
	return nil
}

func (dao *SQLiteCourseDAO) Update(ctx context.Context, c Course) error {
	res, err := dao.db.ExecContext(ctx,
		`UPDATE courses SET name = ?, credits = ?, cutoffs = ?, marks = ?, grade = ?, utime = ? WHERE id = ?`,
		c.Name, c.Credits, c.Cutoffs, c.Marks, c.Grade, time.Now().UnixMilli(), c.Id)
	if err != nil {
		return fmt.Errorf("update course %s: %w", c.Id, err)
	}
	return affected(res)
}

func (dao *SQLiteCourseDAO) Delete(ctx context.Context, id string) error {
	res, err := dao.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete course %s: %w", id, err)
	}
	return affected(res)
}

func (dao *SQLiteCourseDAO) FindById(ctx context.Context, id string) (Course, error) {
	row := dao.db.QueryRowContext(ctx,
		`SELECT id, name, credits, cutoffs, marks, grade, ctime, utime FROM courses WHERE id = ?`, id)
	var c Course
	err := row.Scan(&c.Id, &c.Name, &c.Credits, &c.Cutoffs, &c.Marks, &c.Grade, &c.Ctime, &c.Utime)
	if errors.Is(err, sql.ErrNoRows) {
		return Course{}, ErrRecordNotFound
	}
	return c, err
}

func (dao *SQLiteCourseDAO) FindAll(ctx context.Context) ([]Course, error) {
	rows, err := dao.db.QueryContext(ctx,
		`SELECT id, name, credits, cutoffs, marks, grade, ctime, utime FROM courses ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []Course
	for rows.Next() {
		var c Course
		if err := rows.Scan(&c.Id, &c.Name, &c.Credits, &c.Cutoffs, &c.Marks, &c.Grade, &c.Ctime, &c.Utime); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRecordNotFound
	}
	return nil
}

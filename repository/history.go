package repository

import (
	"context"

	"github.com/asynccnu/be-toolkit/repository/dao"
)

// HistoryLimit 最多保留的查词记录条数
const HistoryLimit = 8

type HistoryRepository interface {
	Record(ctx context.Context, word string) error
	Recent(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

type historyRepository struct {
	dao dao.HistoryDAO
}

func NewHistoryRepository(dao dao.HistoryDAO) HistoryRepository {
	return &historyRepository{dao: dao}
}

func (r *historyRepository) Record(ctx context.Context, word string) error {
	return r.dao.Touch(ctx, word, HistoryLimit)
}

func (r *historyRepository) Recent(ctx context.Context) ([]string, error) {
	return r.dao.FindRecent(ctx, HistoryLimit)
}

func (r *historyRepository) Clear(ctx context.Context) error {
	return r.dao.Clear(ctx)
}

package repository

import (
	"context"
	"encoding/json"

	"github.com/asynccnu/be-toolkit/domain"
	"github.com/asynccnu/be-toolkit/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrPaletteNotFound = dao.ErrRecordNotFound

type PaletteRepository interface {
	Create(ctx context.Context, p domain.Palette) error
	// Modify 读改写是原子的，并发追加颜色不会互相覆盖
	Modify(ctx context.Context, id string, fn func(p *domain.Palette) error) (domain.Palette, error)
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (domain.Palette, error)
	FindAll(ctx context.Context) ([]domain.Palette, error)
}

type paletteRepository struct {
	dao dao.PaletteDAO
}

func NewPaletteRepository(dao dao.PaletteDAO) PaletteRepository {
	return &paletteRepository{dao: dao}
}

func (r *paletteRepository) Create(ctx context.Context, p domain.Palette) error {
	entity, err := r.toEntity(p)
	if err != nil {
		return err
	}
	return r.dao.Insert(ctx, entity)
}

func (r *paletteRepository) Modify(ctx context.Context, id string, fn func(p *domain.Palette) error) (domain.Palette, error) {
	entity, err := r.dao.Modify(ctx, id, func(e *dao.Palette) error {
		p := r.toDomain(*e)
		if err := fn(&p); err != nil {
			return err
		}
		updated, err := r.toEntity(p)
		if err != nil {
			return err
		}
		e.Name = updated.Name
		e.Colors = updated.Colors
		return nil
	})
	if err != nil {
		return domain.Palette{}, err
	}
	return r.toDomain(entity), nil
}

func (r *paletteRepository) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}

func (r *paletteRepository) FindById(ctx context.Context, id string) (domain.Palette, error) {
	p, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Palette{}, err
	}
	return r.toDomain(p), nil
}

func (r *paletteRepository) FindAll(ctx context.Context) ([]domain.Palette, error) {
	ps, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Palette) domain.Palette {
		return r.toDomain(src)
	}), nil
}

func (r *paletteRepository) toEntity(p domain.Palette) (dao.Palette, error) {
	colors := p.Colors
	if colors == nil {
		colors = []string{}
	}
	data, err := json.Marshal(colors)
	if err != nil {
		return dao.Palette{}, err
	}
	return dao.Palette{
		Id:     p.Id,
		Name:   p.Name,
		Colors: string(data),
	}, nil
}

func (r *paletteRepository) toDomain(p dao.Palette) domain.Palette {
	colors := []string{}
	_ = json.Unmarshal([]byte(p.Colors), &colors)
	return domain.Palette{
		Id:     p.Id,
		Name:   p.Name,
		Colors: colors,
		Ctime:  p.Ctime,
		Utime:  p.Utime,
	}
}

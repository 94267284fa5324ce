package repository

import (
	"context"
	"encoding/json"

	"github.com/asynccnu/be-toolkit/domain"
	"github.com/asynccnu/be-toolkit/repository/dao"
	"github.com/ecodeclub/ekit/slice"
)

var ErrCourseNotFound = dao.ErrRecordNotFound

// CourseRepository 课程的持久化接口，替代前端 localStorage 的 load/save
type CourseRepository interface {
	Create(ctx context.Context, c domain.Course) error
	Update(ctx context.Context, c domain.Course) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (domain.Course, error)
	FindAll(ctx context.Context) ([]domain.Course, error)
}

type courseRepository struct {
	dao dao.CourseDAO
}

func NewCourseRepository(dao dao.CourseDAO) CourseRepository {
	return &courseRepository{dao: dao}
}

func (r *courseRepository) Create(ctx context.Context, c domain.Course) error {
	entity, err := r.toEntity(c)
	if err != nil {
		return err
	}
	return r.dao.Insert(ctx, entity)
}

func (r *courseRepository) Update(ctx context.Context, c domain.Course) error {
	entity, err := r.toEntity(c)
	if err != nil {
		return err
	}
	return r.dao.Update(ctx, entity)
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	return r.dao.Delete(ctx, id)
}

func (r *courseRepository) FindById(ctx context.Context, id string) (domain.Course, error) {
	c, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Course{}, err
	}
	return r.toDomain(c), nil
}

func (r *courseRepository) FindAll(ctx context.Context) ([]domain.Course, error) {
	cs, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Course) domain.Course {
		return r.toDomain(src)
	}), nil
}

func (r *courseRepository) toEntity(c domain.Course) (dao.Course, error) {
	cutoffs, err := json.Marshal(c.Cutoffs)
	if err != nil {
		return dao.Course{}, err
	}
	marks, err := json.Marshal(c.Marks)
	if err != nil {
		return dao.Course{}, err
	}
	return dao.Course{
		Id:      c.Id,
		Name:    c.Name,
		Credits: c.Credits,
		Cutoffs: string(cutoffs),
		Marks:   string(marks),
		Grade:   c.Grade,
	}, nil
}

func (r *courseRepository) toDomain(c dao.Course) domain.Course {
	// 存储格式没有版本，解析失败就当空的处理
	var cutoffs domain.Cutoffs
	_ = json.Unmarshal([]byte(c.Cutoffs), &cutoffs)
	var marks []domain.Mark
	_ = json.Unmarshal([]byte(c.Marks), &marks)
	return domain.Course{
		Id:      c.Id,
		Name:    c.Name,
		Credits: c.Credits,
		Cutoffs: cutoffs,
		Marks:   marks,
		Grade:   c.Grade,
		Ctime:   c.Ctime,
		Utime:   c.Utime,
	}
}

package service

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/asynccnu/be-toolkit/domain"
	"github.com/asynccnu/be-toolkit/errs"
	"github.com/asynccnu/be-toolkit/events"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/repository"
	"github.com/google/uuid"
)

type CourseService interface {
	List(ctx context.Context) ([]domain.Course, error)
	Get(ctx context.Context, id string) (domain.Course, error)
	// Create 和 Update 都会重新计算 Grade，调用方传入的 Grade 会被忽略
	Create(ctx context.Context, c domain.Course) (domain.Course, error)
	Update(ctx context.Context, c domain.Course) (domain.Course, error)
	Delete(ctx context.Context, id string) error
	Summary(ctx context.Context) (domain.SGPASummary, error)
	// Evaluate 不落库，给前端编辑课程时预览用
	Evaluate(marks []domain.Mark, cutoffs domain.Cutoffs) (domain.Evaluation, error)
}

type courseService struct {
	repo     repository.CourseRepository
	producer events.Producer
	l        logger.Logger
}

func NewCourseService(repo repository.CourseRepository, producer events.Producer, l logger.Logger) CourseService {
	return &courseService{
		repo:     repo,
		producer: producer,
		l:        l,
	}
}

func (s *courseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.repo.FindAll(ctx)
}

func (s *courseService) Get(ctx context.Context, id string) (domain.Course, error) {
	c, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrCourseNotFound) {
		return domain.Course{}, errs.ErrorCourseNotFound("course %s not found", id)
	}
	return c, err
}

func (s *courseService) Create(ctx context.Context, c domain.Course) (domain.Course, error) {
	c, err := s.normalize(c)
	if err != nil {
		return domain.Course{}, err
	}
	c.Id = uuid.New().String()
	if err = s.repo.Create(ctx, c); err != nil {
		return domain.Course{}, err
	}
	s.l.Info("创建课程", logger.String("courseId", c.Id), logger.Int("grade", c.Grade))
	s.publish(ctx)
	return c, nil
}

func (s *courseService) Update(ctx context.Context, c domain.Course) (domain.Course, error) {
	c, err := s.normalize(c)
	if err != nil {
		return domain.Course{}, err
	}
	err = s.repo.Update(ctx, c)
	if errors.Is(err, repository.ErrCourseNotFound) {
		return domain.Course{}, errs.ErrorCourseNotFound("course %s not found", c.Id)
	}
	if err != nil {
		return domain.Course{}, err
	}
	s.publish(ctx)
	return c, nil
}

func (s *courseService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrCourseNotFound) {
		return errs.ErrorCourseNotFound("course %s not found", id)
	}
	if err != nil {
		return err
	}
	s.publish(ctx)
	return nil
}

func (s *courseService) Summary(ctx context.Context) (domain.SGPASummary, error) {
	courses, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.SGPASummary{}, err
	}
	var credits float64
	for _, c := range courses {
		credits += c.Credits
	}
	return domain.SGPASummary{
		SGPA:         ComputeGPA(courses),
		TotalCredits: credits,
		Courses:      courses,
	}, nil
}

func (s *courseService) Evaluate(marks []domain.Mark, cutoffs domain.Cutoffs) (domain.Evaluation, error) {
	if len(cutoffs) == 0 {
		cutoffs = domain.DefaultCutoffs()
	}
	if err := validateMarks(marks); err != nil {
		return domain.Evaluation{}, err
	}
	if err := validateCutoffs(cutoffs); err != nil {
		return domain.Evaluation{}, err
	}
	return domain.Evaluation{
		Percentage: Percentage(marks),
		Grade:      ComputeGrade(marks, cutoffs),
	}, nil
}

func (s *courseService) normalize(c domain.Course) (domain.Course, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return domain.Course{}, errs.ErrorMissingParameter("course name is required")
	}
	if c.Credits <= 0 || math.IsInf(c.Credits, 0) || math.IsNaN(c.Credits) {
		return domain.Course{}, errs.ErrorInvalidParameter("credits must be a positive number")
	}
	if len(c.Cutoffs) == 0 {
		c.Cutoffs = domain.DefaultCutoffs()
	}
	if err := validateCutoffs(c.Cutoffs); err != nil {
		return domain.Course{}, err
	}
	if err := validateMarks(c.Marks); err != nil {
		return domain.Course{}, err
	}
	if c.Marks == nil {
		c.Marks = []domain.Mark{}
	}
	c.Grade = ComputeGrade(c.Marks, c.Cutoffs)
	return c, nil
}

func (s *courseService) publish(ctx context.Context) {
	summary, err := s.Summary(ctx)
	if err != nil {
		s.l.Error("计算 SGPA 失败", logger.Error(err))
		return
	}
	err = s.producer.ProduceSGPAUpdatedEvent(ctx, events.SGPAUpdatedEvent{
		SGPA:         summary.SGPA,
		TotalCredits: summary.TotalCredits,
		CourseCount:  len(summary.Courses),
	})
	if err != nil {
		s.l.Warn("推送 SGPA 变更失败", logger.Error(err))
	}
}

func validateMarks(marks []domain.Mark) error {
	for i, m := range marks {
		if m.Weightage < 0 {
			return errs.ErrorInvalidParameter("marks[%d]: weightage must not be negative", i)
		}
		if m.Total < 0 || m.Mark < 0 {
			return errs.ErrorInvalidParameter("marks[%d]: mark and total must not be negative", i)
		}
	}
	return nil
}

func validateCutoffs(cutoffs domain.Cutoffs) error {
	for g, v := range cutoffs {
		if g < domain.MinGrade || g > domain.MaxGrade {
			return errs.ErrorInvalidParameter("cutoff for grade %d is out of range %d..%d", g, domain.MinGrade, domain.MaxGrade)
		}
		if v < 0 || math.IsNaN(v) {
			return errs.ErrorInvalidParameter("cutoff for grade %d must not be negative", g)
		}
	}
	return nil
}

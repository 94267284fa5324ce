package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/asynccnu/be-toolkit/domain"
	"github.com/asynccnu/be-toolkit/errs"
	"github.com/asynccnu/be-toolkit/events"
	"github.com/asynccnu/be-toolkit/pkg/logger"
	"github.com/asynccnu/be-toolkit/repository"
	"github.com/asynccnu/be-toolkit/repository/dao"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

type recordProducer struct {
	mu   sync.Mutex
	evts []events.SGPAUpdatedEvent
}

func (p *recordProducer) ProduceSGPAUpdatedEvent(ctx context.Context, evt events.SGPAUpdatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.evts = append(p.evts, evt)
	return nil
}

func newTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "toolkit.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, dao.InitTables(context.Background(), db))
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestCourseService(t *testing.T) (CourseService, *recordProducer) {
	p := &recordProducer{}
	repo := repository.NewCourseRepository(dao.NewSQLiteCourseDAO(newTestDB(t)))
	return NewCourseService(repo, p, logger.NewNopLogger()), p
}

func TestCourseService_CRUD(t *testing.T) {
	ctx := context.Background()
	svc, p := newTestCourseService(t)

	created, err := svc.Create(ctx, domain.Course{
		Name:    "  Data Structures ",
		Credits: 4,
		Marks: []domain.Mark{
			{Mark: 45, Total: 50, Weightage: 60},
			{Mark: 18, Total: 20, Weightage: 40},
		},
		// 调用方传进来的 grade 不算数
		Grade: 5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, "Data Structures", created.Name)
	assert.Equal(t, 10, created.Grade)
	assert.Equal(t, domain.DefaultCutoffs(), created.Cutoffs)

	_, err = svc.Create(ctx, domain.Course{
		Name:    "Physics",
		Credits: 2,
		Marks:   []domain.Mark{{Mark: 55, Total: 100, Weightage: 100}},
	})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Len(t, summary.Courses, 2)
	assert.InDelta(t, 6.0, summary.TotalCredits, 1e-9)
	assert.InDelta(t, (10*4+6*2)/6.0, summary.SGPA, 1e-9)

	created.Marks = []domain.Mark{{Mark: 75, Total: 100, Weightage: 100}}
	updated, err := svc.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Grade)

	got, err := svc.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Grade)
	assert.Equal(t, created.Marks, got.Marks)

	require.NoError(t, svc.Delete(ctx, created.Id))
	_, err = svc.Get(ctx, created.Id)
	assert.True(t, errs.IsCourseNotFound(err))
	assert.True(t, errs.IsCourseNotFound(svc.Delete(ctx, created.Id)))

	_, err = svc.Update(ctx, domain.Course{Id: "missing", Name: "x", Credits: 1})
	assert.True(t, errs.IsCourseNotFound(err))

	// 两次创建 + 一次更新 + 一次删除
	require.Len(t, p.evts, 4)
	last := p.evts[3]
	assert.Equal(t, 1, last.CourseCount)
	assert.InDelta(t, 6.0, last.SGPA, 1e-9)
}

func TestCourseService_Validation(t *testing.T) {
	ctx := context.Background()
	svc, p := newTestCourseService(t)

	testCases := []struct {
		name   string
		course domain.Course
		check  func(error) bool
	}{
		{
			name:   "空名字",
			course: domain.Course{Name: "   ", Credits: 3},
			check:  errs.IsMissingParameter,
		},
		{
			name:   "学分为 0",
			course: domain.Course{Name: "a", Credits: 0},
			check:  errs.IsInvalidParameter,
		},
		{
			name:   "负权重",
			course: domain.Course{Name: "a", Credits: 3, Marks: []domain.Mark{{Mark: 1, Total: 2, Weightage: -1}}},
			check:  errs.IsInvalidParameter,
		},
		{
			name:   "绩点越界",
			course: domain.Course{Name: "a", Credits: 3, Cutoffs: domain.Cutoffs{11: 95}},
			check:  errs.IsInvalidParameter,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.course)
			assert.True(t, tc.check(err), "unexpected error %v", err)
		})
	}
	assert.Empty(t, p.evts)
}

func TestCourseService_Evaluate(t *testing.T) {
	svc, _ := newTestCourseService(t)

	res, err := svc.Evaluate([]domain.Mark{{Mark: 81, Total: 100, Weightage: 100}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 9, res.Grade)
	assert.InDelta(t, 81, res.Percentage, 1e-9)

	res, err = svc.Evaluate([]domain.Mark{{Mark: 0, Total: 100, Weightage: 0}}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Grade)

	_, err = svc.Evaluate([]domain.Mark{{Weightage: -5}}, nil)
	assert.True(t, errs.IsInvalidParameter(err))
}

package web

import (
	"github.com/asynccnu/be-toolkit/domain"
	"github.com/asynccnu/be-toolkit/errs"
	"github.com/asynccnu/be-toolkit/pkg/ginx"
	"github.com/asynccnu/be-toolkit/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	svc service.CourseService
}

func NewCourseHandler(svc service.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

func (h *CourseHandler) RegisterRoutes(s *gin.Engine) {
	g := s.Group("/api/sgpa")
	g.GET("", ginx.Wrap(h.Summary))
	g.POST("/evaluate", ginx.WrapReq(h.Evaluate))
	g.GET("/courses", ginx.Wrap(h.List))
	g.POST("/courses", ginx.WrapReq(h.Create))
	g.GET("/courses/:id", ginx.Wrap(h.Get))
	g.PUT("/courses/:id", ginx.WrapReq(h.Update))
	g.DELETE("/courses/:id", ginx.Wrap(h.Delete))
}

// Summary 当前所有课程的 SGPA
// @Summary SGPA 汇总
// @Tags 绩点
// @Produce json
// @Success 200 {object} ginx.Result{data=SGPAVo}
// @Router /api/sgpa [get]
func (h *CourseHandler) Summary(ctx *gin.Context) (ginx.Result, error) {
	summary, err := h.svc.Summary(ctx.Request.Context())
	if err != nil {
		return errorResult(errs.InternalServerError, err)
	}
	return ginx.Result{
		Msg:  "Success",
		Data: toSGPAVo(summary),
	}, nil
}

// Evaluate 预览一组成绩在给定分数线下的绩点，不保存
// @Summary 绩点预览
// @Tags 绩点
// @Accept json
// @Produce json
// @Param EvaluateReq body EvaluateReq true "成绩与分数线"
// @Success 200 {object} ginx.Result{data=EvaluationVo}
// @Router /api/sgpa/evaluate [post]
func (h *CourseHandler) Evaluate(ctx *gin.Context, req EvaluateReq) (ginx.Result, error) {
	ev, err := h.svc.Evaluate(toDomainMarks(req.Marks), req.Cutoffs)
	if err != nil {
		return h.courseError(err)
	}
	return ginx.Result{
		Msg: "Success",
		Data: EvaluationVo{
			Percentage: ev.Percentage,
			Grade:      ev.Grade,
		},
	}, nil
}

// List 课程列表，按创建顺序
// @Summary 课程列表
// @Tags 绩点
// @Produce json
// @Success 200 {object} ginx.Result{data=[]CourseVo}
// @Router /api/sgpa/courses [get]
func (h *CourseHandler) List(ctx *gin.Context) (ginx.Result, error) {
	courses, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		return errorResult(errs.InternalServerError, err)
	}
	return ginx.Result{
		Msg:  "Success",
		Data: slice.Map(courses, func(idx int, src domain.Course) CourseVo { return toCourseVo(src) }),
	}, nil
}

// Create 新增课程
// @Summary 新增课程
// @Tags 绩点
// @Accept json
// @Produce json
// @Param SaveCourseReq body SaveCourseReq true "课程"
// @Success 200 {object} ginx.Result{data=CourseVo}
// @Router /api/sgpa/courses [post]
func (h *CourseHandler) Create(ctx *gin.Context, req SaveCourseReq) (ginx.Result, error) {
	c, err := h.svc.Create(ctx.Request.Context(), toDomainCourse("", req))
	if err != nil {
		return h.courseError(err)
	}
	return ginx.Result{
		Msg:  "Success",
		Data: toCourseVo(c),
	}, nil
}

// Get 单个课程
// @Summary 课程详情
// @Tags 绩点
// @Produce json
// @Param id path string true "课程 id"
// @Success 200 {object} ginx.Result{data=CourseVo}
// @Router /api/sgpa/courses/{id} [get]
func (h *CourseHandler) Get(ctx *gin.Context) (ginx.Result, error) {
	c, err := h.svc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		return h.courseError(err)
	}
	return ginx.Result{
		Msg:  "Success",
		Data: toCourseVo(c),
	}, nil
}

// Update 整体覆盖课程信息，绩点重新计算
// @Summary 修改课程
// @Tags 绩点
// @Accept json
// @Produce json
// @Param id path string true "课程 id"
// @Param SaveCourseReq body SaveCourseReq true "课程"
// @Success 200 {object} ginx.Result{data=CourseVo}
// @Router /api/sgpa/courses/{id} [put]
func (h *CourseHandler) Update(ctx *gin.Context, req SaveCourseReq) (ginx.Result, error) {
	c, err := h.svc.Update(ctx.Request.Context(), toDomainCourse(ctx.Param("id"), req))
	if err != nil {
		return h.courseError(err)
	}
	return ginx.Result{
		Msg:  "Success",
		Data: toCourseVo(c),
	}, nil
}

// Delete 删除课程
// @Summary 删除课程
// @Tags 绩点
// @Param id path string true "课程 id"
// @Success 200 {object} ginx.Result
// @Router /api/sgpa/courses/{id} [delete]
func (h *CourseHandler) Delete(ctx *gin.Context) (ginx.Result, error) {
	if err := h.svc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		return h.courseError(err)
	}
	return ginx.Result{Msg: "Success"}, nil
}

func (h *CourseHandler) courseError(err error) (ginx.Result, error) {
	switch {
	case errs.IsCourseNotFound(err):
		return errorResult(errs.CourseNotFound, err)
	case errs.IsMissingParameter(err), errs.IsInvalidParameter(err):
		return errorResult(errs.CourseInvalidInput, err)
	default:
		return errorResult(errs.InternalServerError, err)
	}
}

func toDomainMarks(marks []MarkVo) []domain.Mark {
	return slice.Map(marks, func(idx int, src MarkVo) domain.Mark {
		return domain.Mark{
			Mark:      src.Mark,
			Total:     src.Total,
			Weightage: src.Weightage,
		}
	})
}

func toDomainCourse(id string, req SaveCourseReq) domain.Course {
	return domain.Course{
		Id:      id,
		Name:    req.Name,
		Credits: req.Credits,
		Cutoffs: req.Cutoffs,
		Marks:   toDomainMarks(req.Marks),
	}
}

func toCourseVo(c domain.Course) CourseVo {
	return CourseVo{
		Id:      c.Id,
		Name:    c.Name,
		Credits: c.Credits,
		Cutoffs: c.Cutoffs,
		Marks: slice.Map(c.Marks, func(idx int, src domain.Mark) MarkVo {
			return MarkVo{
				Mark:      src.Mark,
				Total:     src.Total,
				Weightage: src.Weightage,
			}
		}),
		Grade: c.Grade,
		Ctime: c.Ctime,
		Utime: c.Utime,
	}
}

func toSGPAVo(s domain.SGPASummary) SGPAVo {
	return SGPAVo{
		SGPA:         s.SGPA,
		TotalCredits: s.TotalCredits,
		CourseCount:  len(s.Courses),
		Courses:      slice.Map(s.Courses, func(idx int, src domain.Course) CourseVo { return toCourseVo(src) }),
	}
}

package web

type MarkVo struct {
	Mark      float64 `json:"mark"`
	Total     float64 `json:"total"`
	Weightage float64 `json:"weightage"` // 百分比权重
}

type CourseVo struct {
	Id      string          `json:"id"`
	Name    string          `json:"name"`
	Credits float64         `json:"credits"`
	Cutoffs map[int]float64 `json:"cutoffs"` // 绩点 -> 最低百分比
	Marks   []MarkVo        `json:"marks"`
	Grade   int             `json:"grade"`
	Ctime   int64           `json:"ctime"`
	Utime   int64           `json:"utime"`
}

type SaveCourseReq struct {
	Name    string          `json:"name"`
	Credits float64         `json:"credits"`
	Cutoffs map[int]float64 `json:"cutoffs"` // 为空时用默认分数线
	Marks   []MarkVo        `json:"marks"`
}

type EvaluateReq struct {
	Cutoffs map[int]float64 `json:"cutoffs"`
	Marks   []MarkVo        `json:"marks"`
}

type EvaluationVo struct {
	Percentage float64 `json:"percentage"`
	Grade      int     `json:"grade"`
}

type SGPAVo struct {
	SGPA         float64    `json:"sgpa"`
	TotalCredits float64    `json:"totalCredits"`
	CourseCount  int        `json:"courseCount"`
	Courses      []CourseVo `json:"courses"`
}

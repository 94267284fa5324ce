package domain

// Mark 一项考核成绩，Mark/Total 为得分率，Weightage 为该项在总评中的百分比权重
type Mark struct {
	Mark      float64 `json:"mark"`
	Total     float64 `json:"total"`
	Weightage float64 `json:"weightage"`
}

// Cutoffs 绩点 -> 最低百分比
type Cutoffs map[int]float64

const (
	MinGrade = 5
	MaxGrade = 10
)

func DefaultCutoffs() Cutoffs {
	return Cutoffs{
		10: 90,
		9:  80,
		8:  70,
		7:  60,
		6:  50,
		5:  40,
	}
}

type Course struct {
	Id      string
	Name    string
	Credits float64
	Cutoffs Cutoffs
	Marks   []Mark
	// Grade 由 Marks 和 Cutoffs 推导，不允许单独修改
	Grade int
	Ctime int64
	Utime int64
}

type Evaluation struct {
	Percentage float64
	Grade      int
}

type SGPASummary struct {
	SGPA         float64
	TotalCredits float64
	Courses      []Course
}

package service

import (
	"testing"

	"github.com/asynccnu/be-toolkit/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeGrade(t *testing.T) {
	testCases := []struct {
		name    string
		marks   []domain.Mark
		cutoffs domain.Cutoffs
		want    int
	}{
		{
			name: "加权 90 分拿 10",
			marks: []domain.Mark{
				{Mark: 45, Total: 50, Weightage: 60},
				{Mark: 18, Total: 20, Weightage: 40},
			},
			cutoffs: domain.DefaultCutoffs(),
			want:    10,
		},
		{
			name:    "正好等于 cutoff",
			marks:   []domain.Mark{{Mark: 70, Total: 100, Weightage: 100}},
			cutoffs: domain.DefaultCutoffs(),
			want:    8,
		},
		{
			name:    "低于所有 cutoff",
			marks:   []domain.Mark{{Mark: 39, Total: 100, Weightage: 100}},
			cutoffs: domain.DefaultCutoffs(),
			want:    0,
		},
		{
			name:    "总权重为 0",
			marks:   []domain.Mark{{Mark: 100, Total: 100, Weightage: 0}},
			cutoffs: domain.Cutoffs{10: 0, 9: 0, 8: 0, 7: 0, 6: 0, 5: 0},
			want:    0,
		},
		{
			name:    "没有任何考核项",
			cutoffs: domain.DefaultCutoffs(),
			want:    0,
		},
		{
			name: "total 为 0 的项不报错只贡献 0",
			marks: []domain.Mark{
				{Mark: 10, Total: 0, Weightage: 50},
				{Mark: 100, Total: 100, Weightage: 50},
			},
			cutoffs: domain.DefaultCutoffs(),
			want:    6,
		},
		{
			name:    "缺失的绩点直接跳过",
			marks:   []domain.Mark{{Mark: 95, Total: 100, Weightage: 100}},
			cutoffs: domain.Cutoffs{8: 70, 5: 40},
			want:    8,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeGrade(tc.marks, tc.cutoffs))
		})
	}
}

func TestComputeGrade_Monotonic(t *testing.T) {
	cutoffs := domain.DefaultCutoffs()
	prev := 0
	for score := 0.0; score <= 100; score += 0.5 {
		g := ComputeGrade([]domain.Mark{{Mark: score, Total: 100, Weightage: 100}}, cutoffs)
		assert.Contains(t, []int{0, 5, 6, 7, 8, 9, 10}, g)
		assert.GreaterOrEqual(t, g, prev, "score %v", score)
		prev = g
	}
}

func TestPercentage(t *testing.T) {
	assert.InDelta(t, 90, Percentage([]domain.Mark{
		{Mark: 45, Total: 50, Weightage: 60},
		{Mark: 18, Total: 20, Weightage: 40},
	}), 1e-9)
	assert.Equal(t, 0.0, Percentage(nil))
}

func TestComputeGPA(t *testing.T) {
	testCases := []struct {
		name    string
		courses []domain.Course
		want    float64
	}{
		{
			name: "空列表",
			want: 0,
		},
		{
			name: "学分相同等于平均数",
			courses: []domain.Course{
				{Credits: 3, Grade: 10},
				{Credits: 3, Grade: 8},
				{Credits: 3, Grade: 6},
			},
			want: 8,
		},
		{
			name: "按学分加权",
			courses: []domain.Course{
				{Credits: 4, Grade: 10},
				{Credits: 1, Grade: 5},
			},
			want: 9,
		},
		{
			name: "总学分为 0",
			courses: []domain.Course{
				{Credits: 0, Grade: 10},
			},
			want: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, ComputeGPA(tc.courses), 1e-9)
		})
	}
}

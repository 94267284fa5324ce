package service

import "github.com/asynccnu/be-toolkit/domain"

// Percentage 加权百分比：Σ(mark/total × weightage) / Σ(weightage) × 100
// total 为 0 的项贡献 0，总权重为 0 时返回 0
func Percentage(marks []domain.Mark) float64 {
	var totalWeight, weighted float64
	for _, m := range marks {
		totalWeight += m.Weightage
		if m.Total > 0 {
			weighted += m.Mark / m.Total * m.Weightage
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return weighted / totalWeight * 100
}

// ComputeGrade 从 10 往 5 扫，第一个 cutoff <= 百分比 的绩点胜出，都不满足返回 0
func ComputeGrade(marks []domain.Mark, cutoffs domain.Cutoffs) int {
	if totalWeightage(marks) == 0 {
		return 0
	}
	percentage := Percentage(marks)
	for g := domain.MaxGrade; g >= domain.MinGrade; g-- {
		cutoff, ok := cutoffs[g]
		if !ok {
			continue
		}
		if percentage >= cutoff {
			return g
		}
	}
	return 0
}

// ComputeGPA Σ(grade × credits) / Σ(credits)，没有课程或总学分为 0 时返回 0
func ComputeGPA(courses []domain.Course) float64 {
	var totalCredits, weighted float64
	for _, c := range courses {
		totalCredits += c.Credits
		weighted += float64(c.Grade) * c.Credits
	}
	if totalCredits == 0 {
		return 0
	}
	return weighted / totalCredits
}

func totalWeightage(marks []domain.Mark) float64 {
	var sum float64
	for _, m := range marks {
		sum += m.Weightage
	}
	return sum
}

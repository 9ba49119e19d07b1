package scheduler

import (
	"math"
	"strings"

	"github.com/Venkatesh961/TimeTable-Generator/pkg/model"
)

// Requirements holds the number of session instances to place for one course.
type Requirements struct {
	Lectures  int
	Tutorials int
	Labs      int
	SelfStudy int
}

// IsSelfStudyOnly reports whether the course carries self-study hours and
// nothing else. Such courses are listed separately, never placed on the grid.
func IsSelfStudyOnly(row *model.CourseRow) bool {
	return row.S() > 0 && row.L() == 0 && row.T() == 0 && row.P() == 0
}

// CalculateRequirements converts a course's credit fields into session counts.
// Lecture credits scale so that 3 credits come out as 2 sessions of 1.5 hours;
// each lab session covers 2 lab hours; self-study hours convert 4-to-1. The
// scaling constants are institution-specific and preserved as-is.
func CalculateRequirements(row *model.CourseRow) Requirements {
	if IsSelfStudyOnly(row) {
		return Requirements{}
	}
	var r Requirements
	if l := row.L(); l > 0 {
		r.Lectures = int(math.Round(l * 2 / 3))
		if r.Lectures < 1 {
			r.Lectures = 1
		}
	}
	r.Tutorials = row.T()
	r.Labs = row.P() / 2
	if row.L() > 0 || row.T() > 0 || row.P() > 0 {
		r.SelfStudy = row.S() / 4
	}
	return r
}

// CoursePriority scores a course so the most constrained ones are placed
// first: labs weigh heaviest, then heavy lecture loads, then tutorials.
func CoursePriority(row *model.CourseRow) int {
	p := 0
	if row.P() > 0 {
		p += 3
	}
	if row.L() > 2 {
		p += 2
	}
	if row.T() > 0 {
		p += 1
	}
	return p
}

// LabRoomCategory picks the lab room category implied by the course code.
func LabRoomCategory(code string) model.RoomType {
	upper := strings.ToUpper(code)
	if strings.Contains(upper, "CS") || strings.Contains(upper, "DS") {
		return model.RoomComputerLab
	}
	if strings.Contains(upper, "EC") {
		return model.RoomHardwareLab
	}
	return model.RoomComputerLab
}

// IsBasketCourse reports whether the code names a basket/elective bucket
// (prefix "B" followed by a digit). Basket courses skip the faculty-diversity
// reassignment applied to regular multi-candidate courses.
func IsBasketCourse(code string) bool {
	return len(code) >= 2 && code[0] == 'B' && code[1] >= '1' && code[1] <= '9'
}

// SelectFaculty deterministically picks one candidate from a multi-valued
// faculty field ("A / B"), preferring a candidate not already assigned to the
// same course in another section. Pure: the caller owns the assignment set.
func SelectFaculty(field string, alreadyAssigned []string) string {
	if !strings.Contains(field, "/") {
		return strings.TrimSpace(field)
	}
	options := strings.Split(field, "/")
	for i := range options {
		options[i] = strings.TrimSpace(options[i])
	}
	for _, opt := range options {
		taken := false
		for _, a := range alreadyAssigned {
			if a == opt {
				taken = true
				break
			}
		}
		if !taken {
			return opt
		}
	}
	return options[0]
}

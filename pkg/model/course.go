package model

import (
	"strconv"
	"strings"
)

// SessionType tags one scheduled occurrence of a course component.
type SessionType string

const (
	SessionLecture   SessionType = "LEC"
	SessionLab       SessionType = "LAB"
	SessionTutorial  SessionType = "TUT"
	SessionSelfStudy SessionType = "SS"
)

// Duration returns the component length in slots.
func (s SessionType) Duration() int {
	switch s {
	case SessionLecture:
		return LectureSlots
	case SessionLab:
		return LabSlots
	case SessionTutorial:
		return TutorialSlots
	case SessionSelfStudy:
		return SelfStudySlots
	}
	return 1
}

// CourseRow is one catalog entry. The credit fields are kept as raw strings
// because the source sheets routinely carry blanks and stray text; missing or
// non-numeric values count as zero.
type CourseRow struct {
	Department   string `csv:"Department"`
	Semester     string `csv:"Semester"`
	Code         string `csv:"Course Code"`
	Name         string `csv:"Course Name"`
	LectureRaw   string `csv:"L"`
	TutorialRaw  string `csv:"T"`
	PracticalRaw string `csv:"P"`
	SelfStudyRaw string `csv:"S"`
	CreditsRaw   string `csv:"C"`
	Faculty      string `csv:"Faculty"`
}

// L returns the lecture credit value.
func (r *CourseRow) L() float64 { return floatOrZero(r.LectureRaw) }

// T returns the tutorial hour count.
func (r *CourseRow) T() int { return intOrZero(r.TutorialRaw) }

// P returns the lab hour count.
func (r *CourseRow) P() int { return intOrZero(r.PracticalRaw) }

// S returns the self-study hour count.
func (r *CourseRow) S() int { return intOrZero(r.SelfStudyRaw) }

// C returns the total credit count.
func (r *CourseRow) C() int { return intOrZero(r.CreditsRaw) }

func floatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func intOrZero(s string) int {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	// Some sheets store integer hours as "2.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

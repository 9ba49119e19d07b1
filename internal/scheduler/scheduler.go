package scheduler

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Venkatesh961/TimeTable-Generator/internal/metrics"
	"github.com/Venkatesh961/TimeTable-Generator/pkg/model"
)

// Scheduler runs one full generation pass: every department, every semester,
// every section. The room registry and faculty ledger are shared across the
// whole run so no faculty member or room can be double-booked across
// departments.
type Scheduler struct {
	cfg Config
	log zerolog.Logger
	rec metrics.Recorder
}

// New builds a scheduler. A nil recorder falls back to the nop sink.
func New(cfg Config, log zerolog.Logger, rec metrics.Recorder) *Scheduler {
	if rec == nil {
		rec = metrics.Nop{}
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = NewDefaultConfig().MaxAttempts
	}
	return &Scheduler{cfg: cfg, log: log, rec: rec}
}

// Run converts the course catalog into per-section timetables. Rooms, batch
// data and reserved slots are optional and degrade to documented defaults; an
// empty catalog is fatal since there is nothing to schedule.
func (s *Scheduler) Run(courses []*model.CourseRow, rooms []*model.Room,
	batches []*model.BatchRow, reservedRows []*model.ReservedRow) (*model.Result, error) {
	if len(courses) == 0 {
		return nil, fmt.Errorf("no course catalog data to schedule")
	}

	cal := model.NewCalendar()
	reserved := BuildReservedIndex(reservedRows, s.log)
	batchIdx := BuildBatchIndex(batches)
	registry := NewRoomRegistry(rooms)
	registry.Reset()
	ledger := NewFacultyLedger()
	tracker := NewUnscheduledTracker()
	gen := NewCandidateGenerator(s.cfg.Seed)
	alloc := NewAllocator(cal, registry, ledger, reserved, gen, tracker, s.rec, s.cfg.MaxAttempts)

	res := &model.Result{RunID: uuid.New().String()}
	log := s.log.With().Str("run_id", res.RunID).Logger()
	if registry.Empty() {
		log.Warn().Msg("no rooms loaded, falling back to a single placeholder room")
	}

	for _, department := range uniqueDepartments(courses) {
		unscheduledBefore := tracker.Count()
		tablesBefore := len(res.Tables)
		// Faculty picked for a course in one section steers later
		// sections toward a different candidate.
		assignments := make(map[string][]string)
		for _, semester := range uniqueSemesters(courses, department) {
			cohort := filterCourses(courses, department, semester)
			if len(cohort) == 0 {
				continue
			}
			for _, row := range cohort {
				if IsSelfStudyOnly(row) {
					res.SelfStudyOnly = append(res.SelfStudyOnly, model.SelfStudyCourse{
						Department: department,
						Semester:   semester,
						Code:       row.Code,
						Name:       row.Name,
						Faculty:    row.Faculty,
					})
				}
			}

			info := batchIdx.Lookup(department, semester)
			for sectionIdx := 0; sectionIdx < info.NumSections; sectionIdx++ {
				label := ""
				if info.NumSections > 1 {
					label = string(rune('A' + sectionIdx))
				}
				table := s.fillSection(alloc, cal, cohort, assignments, department, semester, label, info.SectionSize)
				res.Tables = append(res.Tables, table)
			}
		}
		log.Info().
			Str("department", department).
			Int("sections", len(res.Tables)-tablesBefore).
			Int("unscheduled", tracker.Count()-unscheduledBefore).
			Msg("department scheduled")
	}

	res.Unscheduled = tracker.Records()
	log.Info().
		Int("tables", len(res.Tables)).
		Int("unscheduled", tracker.Count()).
		Int("self_study_only", len(res.SelfStudyOnly)).
		Msg("generation run finished")
	return res, nil
}

// fillSection places every required session of one section: labs first while
// the grid is empty, then lectures, then tutorials, and self-study blocks in
// a trailing pass.
func (s *Scheduler) fillSection(alloc *Allocator, cal *model.Calendar, cohort []*model.CourseRow,
	assignments map[string][]string, department, semester, label string, capacity int) *model.Timetable {
	table := model.NewTimetable(cal, department, semester, label)

	ordered := make([]*model.CourseRow, len(cohort))
	copy(ordered, cohort)
	sort.SliceStable(ordered, func(i, j int) bool {
		return CoursePriority(ordered[i]) > CoursePriority(ordered[j])
	})

	sectionFaculty := make(map[string]string, len(ordered))
	for _, row := range ordered {
		if IsSelfStudyOnly(row) {
			continue
		}
		faculty := resolveFaculty(row.Code, row.Faculty, assignments)
		sectionFaculty[row.Code] = faculty
		req := sessionRequest{
			Department: department,
			Semester:   semester,
			Section:    label,
			Code:       row.Code,
			Name:       row.Name,
			Faculty:    faculty,
			Capacity:   capacity,
		}
		needs := CalculateRequirements(row)
		for i := 0; i < needs.Labs; i++ {
			req.Session = model.SessionLab
			alloc.PlaceLab(table, req)
		}
		for i := 0; i < needs.Lectures; i++ {
			req.Session = model.SessionLecture
			alloc.PlaceRandom(table, req)
		}
		for i := 0; i < needs.Tutorials; i++ {
			req.Session = model.SessionTutorial
			alloc.PlaceRandom(table, req)
		}
	}

	for _, row := range ordered {
		needs := CalculateRequirements(row)
		for i := 0; i < needs.SelfStudy; i++ {
			alloc.PlaceRandom(table, sessionRequest{
				Department: department,
				Semester:   semester,
				Section:    label,
				Code:       row.Code,
				Name:       row.Name,
				Faculty:    sectionFaculty[row.Code],
				Session:    model.SessionSelfStudy,
				Capacity:   capacity,
			})
		}
	}

	s.log.Debug().
		Str("department", department).
		Str("semester", semester).
		Str("section", label).
		Msg("section filled")
	return table
}

// resolveFaculty picks the faculty for a course in the current section and
// records the pick so sibling sections prefer a different candidate. Basket
// courses skip the diversity bookkeeping.
func resolveFaculty(code, field string, assignments map[string][]string) string {
	if IsBasketCourse(code) {
		return SelectFaculty(field, nil)
	}
	faculty := SelectFaculty(field, assignments[code])
	assignments[code] = append(assignments[code], faculty)
	return faculty
}

func uniqueDepartments(courses []*model.CourseRow) []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range courses {
		if !seen[c.Department] {
			seen[c.Department] = true
			out = append(out, c.Department)
		}
	}
	return out
}

func uniqueSemesters(courses []*model.CourseRow, department string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, c := range courses {
		if c.Department != department || seen[c.Semester] {
			continue
		}
		seen[c.Semester] = true
		out = append(out, c.Semester)
	}
	return out
}

func filterCourses(courses []*model.CourseRow, department, semester string) []*model.CourseRow {
	var out []*model.CourseRow
	for _, c := range courses {
		if c.Department == department && c.Semester == semester {
			out = append(out, c)
		}
	}
	return out
}

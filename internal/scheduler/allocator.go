package scheduler

import (
	"github.com/Venkatesh961/TimeTable-Generator/internal/metrics"
	"github.com/Venkatesh961/TimeTable-Generator/pkg/model"
)

// labFailureReason is recorded when a lab exhausts every day/slot/room
// combination. Lecture, tutorial and self-study failures imply budget
// exhaustion and carry no reason.
const labFailureReason = "Could not find suitable room and time slot combination"

// sessionRequest identifies one session instance to place.
type sessionRequest struct {
	Department string
	Semester   string
	Section    string
	Code       string
	Name       string
	Faculty    string
	Session    model.SessionType
	Capacity   int
}

// Allocator places session instances onto a section grid while updating the
// shared room registry and faculty ledger. All constraint rejections inside
// the attempt loop are expected and silent; they only consume budget.
type Allocator struct {
	cal         *model.Calendar
	rooms       *RoomRegistry
	faculty     *FacultyLedger
	reserved    *ReservedSlotIndex
	gen         CandidateGenerator
	tracker     *UnscheduledTracker
	rec         metrics.Recorder
	maxAttempts int
}

// NewAllocator wires the allocator to the shared registries.
func NewAllocator(cal *model.Calendar, rooms *RoomRegistry, faculty *FacultyLedger,
	reserved *ReservedSlotIndex, gen CandidateGenerator, tracker *UnscheduledTracker,
	rec metrics.Recorder, maxAttempts int) *Allocator {
	if rec == nil {
		rec = metrics.Nop{}
	}
	if maxAttempts <= 0 {
		maxAttempts = 1000
	}
	return &Allocator{
		cal:         cal,
		rooms:       rooms,
		faculty:     faculty,
		reserved:    reserved,
		gen:         gen,
		tracker:     tracker,
		rec:         rec,
		maxAttempts: maxAttempts,
	}
}

// PlaceRandom places one lecture, tutorial or self-study instance using
// bounded random day+slot guessing. Returns false once the budget is
// exhausted, after recording the failure.
func (a *Allocator) PlaceRandom(t *model.Timetable, req sessionRequest) bool {
	duration := req.Session.Duration()
	attempts := 0
	for attempts < a.maxAttempts {
		attempts++
		day, start := a.gen.RandomSlot(duration)
		if !a.candidateFits(t, req, day, start) {
			continue
		}
		room, ok := a.rooms.FindSuitableRoom(model.RoomLecture, day, start, duration, req.Capacity, nil)
		if !ok {
			continue
		}
		a.commit(t, req, day, start, room)
		a.rec.RecordAttempts(string(req.Session), attempts)
		a.rec.RecordPlacement(string(req.Session))
		return true
	}
	a.rec.RecordAttempts(string(req.Session), attempts)
	a.rec.RecordUnscheduled(string(req.Session))
	a.tracker.Add(model.UnscheduledRecord{
		Department: req.Department,
		Semester:   req.Semester,
		Section:    req.Section,
		Code:       req.Code,
		Name:       req.Name,
		Faculty:    req.Faculty,
		Component:  req.Session,
		Sessions:   1,
	})
	return false
}

// PlaceLab places one lab instance. Days are shuffled once and tried in
// order; within a day every feasible contiguous start is enumerated before
// asking for a room, which beats pure guessing on congested grids.
func (a *Allocator) PlaceLab(t *model.Timetable, req sessionRequest) bool {
	category := LabRoomCategory(req.Code)
	attempts := 0
	for _, day := range a.gen.ShuffledDays() {
		if !a.faculty.CanTakeComponent(req.Faculty, day, req.Department, req.Semester, req.Code, model.SessionLab) {
			continue
		}
		for _, start := range a.feasibleStarts(t, req, day, model.LabSlots) {
			attempts++
			room, ok := a.rooms.FindSuitableRoom(category, day, start, model.LabSlots, req.Capacity, nil)
			if !ok {
				continue
			}
			a.commit(t, req, day, start, room)
			a.rec.RecordAttempts(string(model.SessionLab), attempts)
			a.rec.RecordPlacement(string(model.SessionLab))
			return true
		}
	}
	a.rec.RecordAttempts(string(model.SessionLab), attempts)
	a.rec.RecordUnscheduled(string(model.SessionLab))
	a.tracker.Add(model.UnscheduledRecord{
		Department: req.Department,
		Semester:   req.Semester,
		Section:    req.Section,
		Code:       req.Code,
		Name:       req.Name,
		Faculty:    req.Faculty,
		Component:  model.SessionLab,
		Sessions:   1,
		Reason:     labFailureReason,
	})
	return false
}

// candidateFits runs every slot-level and ledger check for a random
// candidate, in the cheap-to-expensive order the attempt loop wants.
func (a *Allocator) candidateFits(t *model.Timetable, req sessionRequest, day, start int) bool {
	duration := req.Session.Duration()
	if a.reserved.AnyReserved(a.cal, day, start, duration, req.Department, req.Semester) {
		return false
	}
	if !a.faculty.CanTakeComponent(req.Faculty, day, req.Department, req.Semester, req.Code, req.Session) {
		return false
	}
	for i := 0; i < duration; i++ {
		slot := start + i
		if !a.faculty.IsFree(req.Faculty, day, slot) {
			return false
		}
		if !t.IsEmpty(day, slot) {
			return false
		}
	}
	// Lectures keep a gap: the slot immediately before and after must not
	// hold another lecture, lab or tutorial.
	if req.Session == model.SessionLecture {
		if t.HoldsComponent(day, start-1) || t.HoldsComponent(day, start+duration) {
			return false
		}
	}
	return true
}

// feasibleStarts enumerates every start slot on a day where the whole lab
// window is unreserved, off-break, grid-empty and faculty-free.
func (a *Allocator) feasibleStarts(t *model.Timetable, req sessionRequest, day, duration int) []int {
	var starts []int
	for start := 0; start+duration <= model.SlotsPerDay; start++ {
		if a.reserved.AnyReserved(a.cal, day, start, duration, req.Department, req.Semester) {
			continue
		}
		ok := true
		for i := 0; i < duration; i++ {
			if !a.faculty.IsFree(req.Faculty, day, start+i) || !t.IsEmpty(day, start+i) {
				ok = false
				break
			}
		}
		if ok {
			starts = append(starts, start)
		}
	}
	return starts
}

// commit finalizes a successful attempt: ledger slots, grid cells, daily
// component bookkeeping. The room was already reserved by the registry.
func (a *Allocator) commit(t *model.Timetable, req sessionRequest, day, start int, room string) {
	a.faculty.Commit(req.Faculty, day, start, req.Department, req.Semester, req.Code, req.Session)
	t.Place(day, start, req.Session, req.Code, req.Name, req.Faculty, room)
}

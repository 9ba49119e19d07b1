package scheduler

import (
	"strings"

	"github.com/Venkatesh961/TimeTable-Generator/pkg/model"
)

// DefaultRoomID is returned for every request when no room registry was
// loaded; it stands for a single always-available placeholder room.
const DefaultRoomID = "DEFAULT_ROOM"

// RoomRegistry holds all rooms and their occupancy. Rooms are shared across
// every department and section processed in one run; only the allocator
// mutates them.
type RoomRegistry struct {
	rooms []*model.Room
	byID  map[string]*model.Room
}

// NewRoomRegistry builds a registry over the given rooms. Iteration order
// follows the input slice; callers relying on specific rooms must pre-sort.
func NewRoomRegistry(rooms []*model.Room) *RoomRegistry {
	r := &RoomRegistry{rooms: rooms, byID: make(map[string]*model.Room, len(rooms))}
	for _, room := range rooms {
		r.byID[room.ID] = room
	}
	return r
}

// Empty reports whether no rooms were loaded.
func (r *RoomRegistry) Empty() bool { return len(r.rooms) == 0 }

// Reset clears all occupancy for a fresh generation run.
func (r *RoomRegistry) Reset() {
	for _, room := range r.rooms {
		room.Reset()
	}
}

// IsFree reports whether the identified room is free at the given slot.
// Unknown ids are never free.
func (r *RoomRegistry) IsFree(id string, day, slot int) bool {
	room, ok := r.byID[id]
	if !ok {
		return false
	}
	return room.IsFree(day, slot)
}

// Release frees a previously reserved window. Combined ids ("A,B") release
// both rooms.
func (r *RoomRegistry) Release(id string, day, start, duration int) {
	for _, part := range strings.Split(id, ",") {
		if room, ok := r.byID[part]; ok {
			room.Release(day, start, duration)
		}
	}
}

// FindSuitableRoom locates and reserves a room of the given category with
// sufficient capacity whose slots [start,start+duration) are free on day.
// Rooms named in claimed are skipped so parallel sections in the same pass
// cannot grab the same room. For lab categories an adjacent same-floor pair
// may be combined, both reserved, and returned as "roomA,roomB". Returns
// ("", false) when nothing fits; that is an expected outcome, not an error.
func (r *RoomRegistry) FindSuitableRoom(category model.RoomType, day, start, duration, capacity int, claimed map[string]bool) (string, bool) {
	if r.Empty() {
		return DefaultRoomID, true
	}

	for _, room := range r.rooms {
		if claimed[room.ID] || room.Type == model.RoomLibrary {
			continue
		}
		if !matchesCategory(room, category) {
			continue
		}
		if room.Capacity < capacity {
			continue
		}
		if room.FreeFor(day, start, duration) {
			room.Reserve(day, start, duration)
			return room.ID, true
		}
	}

	if category == model.RoomComputerLab || category == model.RoomHardwareLab {
		return r.findCombinedLabPair(category, day, start, duration, capacity, claimed)
	}
	return "", false
}

// findCombinedLabPair reserves two free rooms of the same type on the same
// floor with adjacent room numbers whose combined capacity meets the
// requirement.
func (r *RoomRegistry) findCombinedLabPair(category model.RoomType, day, start, duration, capacity int, claimed map[string]bool) (string, bool) {
	var available []*model.Room
	for _, room := range r.rooms {
		if claimed[room.ID] || room.Type != category {
			continue
		}
		if room.FreeFor(day, start, duration) {
			available = append(available, room)
		}
	}
	for _, room := range available {
		adjacent := adjacentRoom(room, available)
		if adjacent == nil {
			continue
		}
		if room.Capacity+adjacent.Capacity < capacity {
			continue
		}
		room.Reserve(day, start, duration)
		adjacent.Reserve(day, start, duration)
		return room.ID + "," + adjacent.ID, true
	}
	return "", false
}

// adjacentRoom finds a different room of the same type on the same floor
// whose room number differs by exactly 1.
func adjacentRoom(room *model.Room, candidates []*model.Room) *model.Room {
	num := room.Number()
	if num < 0 {
		return nil
	}
	for _, other := range candidates {
		if other.ID == room.ID || other.Type != room.Type {
			continue
		}
		otherNum := other.Number()
		if otherNum < 0 || other.Floor() != room.Floor() {
			continue
		}
		if otherNum-num == 1 || num-otherNum == 1 {
			return other
		}
	}
	return nil
}

// matchesCategory applies the registry's type matching rules. Lecture-type
// requests also accept "...SEATER..." rooms, mirroring the source data where
// large halls are typed by seat count.
func matchesCategory(room *model.Room, category model.RoomType) bool {
	switch category {
	case model.RoomComputerLab, model.RoomHardwareLab:
		return room.Type == category
	default:
		t := string(room.Type)
		return strings.Contains(t, string(model.RoomLecture)) || strings.Contains(t, "SEATER")
	}
}

package model

import (
	"strconv"
	"strings"
)

// RoomType is the registry category of a room. LIBRARY rooms are never
// allocated.
type RoomType string

const (
	RoomLecture     RoomType = "LECTURE_ROOM"
	RoomComputerLab RoomType = "COMPUTER_LAB"
	RoomHardwareLab RoomType = "HARDWARE_LAB"
	RoomLibrary     RoomType = "LIBRARY"
)

// RoomRow is one room registry entry as loaded from disk.
type RoomRow struct {
	ID         string `csv:"id"`
	Capacity   int    `csv:"capacity"`
	Type       string `csv:"type"`
	RoomNumber string `csv:"roomNumber"`
}

// Room holds a room's static attributes and its per-day occupied slot sets.
// Occupancy is mutated only by the allocator and reset between runs.
type Room struct {
	ID         string
	Capacity   int
	Type       RoomType
	RoomNumber string

	occupied [NumberOfDays]map[int]bool
}

// NewRoom builds a room with empty occupancy.
func NewRoom(id string, capacity int, roomType, roomNumber string) *Room {
	r := &Room{
		ID:         id,
		Capacity:   capacity,
		Type:       RoomType(strings.ToUpper(strings.TrimSpace(roomType))),
		RoomNumber: roomNumber,
	}
	r.Reset()
	return r
}

// Reset clears all occupancy for a fresh generation run.
func (r *Room) Reset() {
	for d := range r.occupied {
		r.occupied[d] = make(map[int]bool)
	}
}

// IsFree reports whether a single slot is unoccupied.
func (r *Room) IsFree(day, slot int) bool {
	if day < 0 || day >= NumberOfDays {
		return false
	}
	return !r.occupied[day][slot]
}

// FreeFor reports whether slots [start,start+duration) are all unoccupied.
func (r *Room) FreeFor(day, start, duration int) bool {
	for i := 0; i < duration; i++ {
		if !r.IsFree(day, start+i) {
			return false
		}
	}
	return true
}

// Reserve marks slots [start,start+duration) occupied.
func (r *Room) Reserve(day, start, duration int) {
	for i := 0; i < duration; i++ {
		r.occupied[day][start+i] = true
	}
}

// Release frees slots [start,start+duration).
func (r *Room) Release(day, start, duration int) {
	for i := 0; i < duration; i++ {
		delete(r.occupied[day], start+i)
	}
}

// Number extracts the numeric part of the room number; -1 if there is none.
func (r *Room) Number() int {
	var digits strings.Builder
	for _, c := range r.RoomNumber {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		}
	}
	if digits.Len() == 0 {
		return -1
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return -1
	}
	return n
}

// Floor is the hundreds digit of the room number, used for adjacency.
func (r *Room) Floor() int {
	n := r.Number()
	if n < 0 {
		return -1
	}
	return n / 100
}

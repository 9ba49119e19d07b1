// Package csvio loads the engine's inputs from CSV and exports its outputs.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	"github.com/Venkatesh961/TimeTable-Generator/pkg/model"
)

func setDelimiter(delim rune) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		r.LazyQuotes = true
		return r
	})
}

// LoadCourses reads the course catalog. The catalog is mandatory: a missing
// or unparsable file is fatal to the run.
func LoadCourses(path string, delim rune) ([]*model.CourseRow, error) {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open course catalog: %w", err)
	}
	defer f.Close()

	var rows []*model.CourseRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse course catalog %s: %w", path, err)
	}
	return rows, nil
}

// LoadRooms reads the room registry. Missing or malformed data degrades to no
// rooms, which the engine treats as a single always-available placeholder.
func LoadRooms(path string, delim rune, log zerolog.Logger) []*model.Room {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Str("path", path).Msg("rooms file not found, using default room allocation")
		return nil
	}
	defer f.Close()

	var rows []*model.RoomRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("rooms file unreadable, using default room allocation")
		return nil
	}
	rooms := make([]*model.Room, 0, len(rows))
	for _, r := range rows {
		rooms = append(rooms, model.NewRoom(r.ID, r.Capacity, r.Type, r.RoomNumber))
	}
	return rooms
}

// LoadBatches reads enrollment data. Missing data degrades to the default
// sectioning of one section of 60.
func LoadBatches(path string, delim rune, log zerolog.Logger) []*model.BatchRow {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Str("path", path).Msg("batches file not found, using default batch sizes")
		return nil
	}
	defer f.Close()

	var rows []*model.BatchRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("batches file unreadable, using default batch sizes")
		return nil
	}
	return rows
}

// LoadReserved reads externally blocked time windows. Missing data degrades
// to an empty reservation set.
func LoadReserved(path string, delim rune, log zerolog.Logger) []*model.ReservedRow {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		log.Warn().Str("path", path).Msg("reserved slots file not found, no slots will be reserved")
		return nil
	}
	defer f.Close()

	var rows []*model.ReservedRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("reserved slots file unreadable, no slots will be reserved")
		return nil
	}
	return rows
}

package scheduler

import "github.com/Venkatesh961/TimeTable-Generator/pkg/model"

// DefaultSectionSize is used when a department/semester has no batch data.
const DefaultSectionSize = 60

// ComputeSections derives the number of parallel sections and the per-section
// capacity requirement from enrollment and the maximum batch size.
func ComputeSections(totalStudents, maxBatchSize int) (numSections, sectionSize int) {
	if totalStudents <= 0 || maxBatchSize <= 0 {
		return 1, DefaultSectionSize
	}
	numSections = (totalStudents + maxBatchSize - 1) / maxBatchSize
	sectionSize = (totalStudents + numSections - 1) / numSections
	return numSections, sectionSize
}

// BatchIndex resolves sectioning per department/semester.
type BatchIndex map[string]model.SectionInfo

func batchKey(department, semester string) string {
	return department + "|" + semester
}

// BuildBatchIndex folds enrollment rows into a lookup table.
func BuildBatchIndex(rows []*model.BatchRow) BatchIndex {
	idx := make(BatchIndex, len(rows))
	for _, r := range rows {
		n, size := ComputeSections(r.TotalStudents, r.MaxBatchSize)
		idx[batchKey(r.Department, r.Semester)] = model.SectionInfo{
			Total:       r.TotalStudents,
			NumSections: n,
			SectionSize: size,
		}
	}
	return idx
}

// Lookup returns the sectioning for a cohort, defaulting to one section of 60
// when no batch data exists.
func (b BatchIndex) Lookup(department, semester string) model.SectionInfo {
	if info, ok := b[batchKey(department, semester)]; ok {
		return info
	}
	return model.SectionInfo{Total: DefaultSectionSize, NumSections: 1, SectionSize: DefaultSectionSize}
}

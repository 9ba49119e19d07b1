package model

// BatchRow is one enrollment entry as loaded from disk.
type BatchRow struct {
	Department    string `csv:"Department"`
	Semester      string `csv:"Semester"`
	TotalStudents int    `csv:"Total_Students"`
	MaxBatchSize  int    `csv:"MaxBatchSize"`
}

// SectionInfo is the derived sectioning for one department/semester cohort.
type SectionInfo struct {
	Total       int
	NumSections int
	SectionSize int
}

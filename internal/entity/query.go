package entity

// Query result rows for the HTTP API. JSON field names are part of the
// API contract, so they stay camelCase here regardless of the storage
// column names.

// EligibleCollege is one (college, course) a given rank qualifies for,
// with the best rank ever admitted there as the cutoff.
type EligibleCollege struct {
	College    string `json:"college"`
	Course     string `json:"course"`
	Quota      string `json:"quota,omitempty"`
	Category   string `json:"category"`
	Round      int    `json:"round"`
	Year       int    `json:"year"`
	CutoffRank int    `json:"cutoffRank"`
}

// CollegeInfo summarizes one college across all ingested documents.
type CollegeInfo struct {
	Name        string `json:"name"`
	CourseCount int    `json:"courseCount"`
	SeatsFilled int    `json:"seatsFilled"`
}

// CourseCount is a course name with the number of seats filled under it.
type CourseCount struct {
	Course      string `json:"course"`
	SeatsFilled int    `json:"seatsFilled"`
}

// Statistics is the dataset-wide summary.
type Statistics struct {
	TotalRecords  int            `json:"totalRecords"`
	TotalColleges int            `json:"totalColleges"`
	TotalCourses  int            `json:"totalCourses"`
	Years         []int          `json:"years"`
	Rounds        []int          `json:"rounds"`
	ByCategory    map[string]int `json:"byCategory"`
}

// CutoffRow is one course's cutoff at a specific college. The cutoff is
// the best (minimum) admitted rank of the group.
type CutoffRow struct {
	Course      string `json:"course"`
	Quota       string `json:"quota,omitempty"`
	Category    string `json:"category"`
	Round       int    `json:"round"`
	Year        int    `json:"year"`
	CutoffRank  int    `json:"cutoffRank"`
	SeatsFilled int    `json:"seatsFilled"`
}

// CutoffExport is one grouped cutoff row in the web-facing JSON export.
// The key is named lastRank for compatibility even though it carries the
// best (minimum) admitted rank of the group.
type CutoffExport struct {
	College  string `json:"college"`
	Course   string `json:"course"`
	Quota    string `json:"quota"`
	LastRank int    `json:"lastRank"`
	Category string `json:"category"`
	Round    int    `json:"round"`
	Year     int    `json:"year"`
}

// SearchResults wraps a record search with its total match count.
type SearchResults struct {
	Total   int               `json:"total"`
	Records []AdmissionRecord `json:"records"`
}

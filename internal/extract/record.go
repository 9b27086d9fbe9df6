package extract

// Record is one observed admission/allotment event recovered from a
// document row. String fields use "" for absent; the repository maps
// those to NULL columns. Records are immutable once emitted by a parser.
type Record struct {
	Year                  int
	Round                 int
	Rank                  int
	Quota                 string
	State                 string
	CollegeName           string
	Course                string
	Category              string
	SubCategory           string
	Gender                string
	PhysicallyHandicapped string
	MarksObtained         *int
	MaxMarks              *int
	Status                string
	DateOfAdmission       string

	// Present only for the state layout.
	StudentName    string
	ExamRoll       string
	Stipend        string
	RegistrationNo string
	Council        string
}

// Candidate pairs a parsed record with the page it came from. The page
// number is provenance for verification sampling, not part of the record.
type Candidate struct {
	Record Record
	Page   int
}

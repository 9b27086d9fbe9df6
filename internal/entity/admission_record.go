package entity

import (
	"time"

	"github.com/google/uuid"
)

// AdmissionRecord represents one allotted seat for data transfer between
// layers.
type AdmissionRecord struct {
	ID                    uuid.UUID `json:"id"`
	Year                  int       `json:"year"`
	Round                 int       `json:"round"`
	Rank                  int       `json:"rank"`
	Quota                 *string   `json:"quota,omitempty"`
	State                 *string   `json:"state,omitempty"`
	CollegeName           *string   `json:"college_name,omitempty"`
	Course                *string   `json:"course,omitempty"`
	Category              string    `json:"category"`
	SubCategory           *string   `json:"sub_category,omitempty"`
	Gender                *string   `json:"gender,omitempty"`
	PhysicallyHandicapped *string   `json:"physically_handicapped,omitempty"`
	MarksObtained         *int      `json:"marks_obtained,omitempty"`
	MaxMarks              *int      `json:"max_marks,omitempty"`
	Status                *string   `json:"status,omitempty"`
	DateOfAdmission       *string   `json:"date_of_admission,omitempty"`
	StudentName           *string   `json:"student_name,omitempty"`
	ExamRoll              *string   `json:"exam_roll,omitempty"`
	Stipend               *string   `json:"stipend,omitempty"`
	RegistrationNo        *string   `json:"registration_no,omitempty"`
	Council               *string   `json:"council,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}

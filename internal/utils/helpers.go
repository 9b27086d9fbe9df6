package utils

import (
	"github.com/avesh-singh/neet-pg-checker/gen/ent"
	"github.com/avesh-singh/neet-pg-checker/internal/entity"
)

// ToAdmissionRecord maps a stored row to its transfer shape.
func ToAdmissionRecord(r *ent.AdmissionRecord) entity.AdmissionRecord {
	return entity.AdmissionRecord{
		ID:                    r.ID,
		Year:                  r.Year,
		Round:                 r.Round,
		Rank:                  r.Rank,
		Quota:                 r.Quota,
		State:                 r.State,
		CollegeName:           r.CollegeName,
		Course:                r.Course,
		Category:              r.Category,
		SubCategory:           r.SubCategory,
		Gender:                r.Gender,
		PhysicallyHandicapped: r.PhysicallyHandicapped,
		MarksObtained:         r.MarksObtained,
		MaxMarks:              r.MaxMarks,
		Status:                r.Status,
		DateOfAdmission:       r.DateOfAdmission,
		StudentName:           r.StudentName,
		ExamRoll:              r.ExamRoll,
		Stipend:               r.Stipend,
		RegistrationNo:        r.RegistrationNo,
		Council:               r.Council,
		CreatedAt:             r.CreatedAt,
	}
}

// ToProcessedFile maps a stored row to its transfer shape.
func ToProcessedFile(f *ent.ProcessedFile) entity.ProcessedFile {
	return entity.ProcessedFile{
		ID:           f.ID,
		Filename:     f.Filename,
		Layout:       f.Layout,
		RecordsCount: f.RecordsCount,
		SampleSize:   f.SampleSize,
		ReviewStatus: f.ReviewStatus,
		ProcessedAt:  f.ProcessedAt,
	}
}

// ToVerificationRecord maps a stored row to its transfer shape.
func ToVerificationRecord(v *ent.VerificationRecord) entity.VerificationRecord {
	return entity.VerificationRecord{
		ID:           v.ID,
		RecordID:     v.RecordID,
		FileID:       v.FileID,
		PageNumber:   v.PageNumber,
		ReviewStatus: v.ReviewStatus,
		Reviewer:     v.Reviewer,
		Notes:        v.Notes,
		CreatedAt:    v.CreatedAt,
	}
}

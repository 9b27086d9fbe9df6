// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/avesh-singh/neet-pg-checker/db/ent/schema"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/admissionrecord"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/processedfile"
	"github.com/avesh-singh/neet-pg-checker/gen/ent/verificationrecord"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	admissionrecordFields := schema.AdmissionRecord{}.Fields()
	_ = admissionrecordFields
	// admissionrecordDescYear is the schema descriptor for year field.
	admissionrecordDescYear := admissionrecordFields[1].Descriptor()
	// admissionrecord.YearValidator is a validator for the "year" field. It is called by the builders before save.
	admissionrecord.YearValidator = admissionrecordDescYear.Validators[0].(func(int) error)
	// admissionrecordDescRound is the schema descriptor for round field.
	admissionrecordDescRound := admissionrecordFields[2].Descriptor()
	// admissionrecord.RoundValidator is a validator for the "round" field. It is called by the builders before save.
	admissionrecord.RoundValidator = admissionrecordDescRound.Validators[0].(func(int) error)
	// admissionrecordDescRank is the schema descriptor for rank field.
	admissionrecordDescRank := admissionrecordFields[3].Descriptor()
	// admissionrecord.RankValidator is a validator for the "rank" field. It is called by the builders before save.
	admissionrecord.RankValidator = admissionrecordDescRank.Validators[0].(func(int) error)
	// admissionrecordDescCategory is the schema descriptor for category field.
	admissionrecordDescCategory := admissionrecordFields[8].Descriptor()
	// admissionrecord.DefaultCategory holds the default value on creation for the category field.
	admissionrecord.DefaultCategory = admissionrecordDescCategory.Default.(string)
	// admissionrecordDescCreatedAt is the schema descriptor for created_at field.
	admissionrecordDescCreatedAt := admissionrecordFields[21].Descriptor()
	// admissionrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	admissionrecord.DefaultCreatedAt = admissionrecordDescCreatedAt.Default.(func() time.Time)
	// admissionrecordDescID is the schema descriptor for id field.
	admissionrecordDescID := admissionrecordFields[0].Descriptor()
	// admissionrecord.DefaultID holds the default value on creation for the id field.
	admissionrecord.DefaultID = admissionrecordDescID.Default.(func() uuid.UUID)
	processedfileFields := schema.ProcessedFile{}.Fields()
	_ = processedfileFields
	// processedfileDescFilename is the schema descriptor for filename field.
	processedfileDescFilename := processedfileFields[1].Descriptor()
	// processedfile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	processedfile.FilenameValidator = processedfileDescFilename.Validators[0].(func(string) error)
	// processedfileDescLayout is the schema descriptor for layout field.
	processedfileDescLayout := processedfileFields[2].Descriptor()
	// processedfile.LayoutValidator is a validator for the "layout" field. It is called by the builders before save.
	processedfile.LayoutValidator = func() func(string) error {
		validators := processedfileDescLayout.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(layout string) error {
			for _, fn := range fns {
				if err := fn(layout); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processedfileDescRecordsCount is the schema descriptor for records_count field.
	processedfileDescRecordsCount := processedfileFields[3].Descriptor()
	// processedfile.RecordsCountValidator is a validator for the "records_count" field. It is called by the builders before save.
	processedfile.RecordsCountValidator = processedfileDescRecordsCount.Validators[0].(func(int) error)
	// processedfileDescReviewStatus is the schema descriptor for review_status field.
	processedfileDescReviewStatus := processedfileFields[5].Descriptor()
	// processedfile.ReviewStatusValidator is a validator for the "review_status" field. It is called by the builders before save.
	processedfile.ReviewStatusValidator = processedfileDescReviewStatus.Validators[0].(func(string) error)
	// processedfileDescProcessedAt is the schema descriptor for processed_at field.
	processedfileDescProcessedAt := processedfileFields[6].Descriptor()
	// processedfile.DefaultProcessedAt holds the default value on creation for the processed_at field.
	processedfile.DefaultProcessedAt = processedfileDescProcessedAt.Default.(func() time.Time)
	// processedfileDescID is the schema descriptor for id field.
	processedfileDescID := processedfileFields[0].Descriptor()
	// processedfile.DefaultID holds the default value on creation for the id field.
	processedfile.DefaultID = processedfileDescID.Default.(func() uuid.UUID)
	verificationrecordFields := schema.VerificationRecord{}.Fields()
	_ = verificationrecordFields
	// verificationrecordDescPageNumber is the schema descriptor for page_number field.
	verificationrecordDescPageNumber := verificationrecordFields[3].Descriptor()
	// verificationrecord.PageNumberValidator is a validator for the "page_number" field. It is called by the builders before save.
	verificationrecord.PageNumberValidator = verificationrecordDescPageNumber.Validators[0].(func(int) error)
	// verificationrecordDescReviewStatus is the schema descriptor for review_status field.
	verificationrecordDescReviewStatus := verificationrecordFields[4].Descriptor()
	// verificationrecord.DefaultReviewStatus holds the default value on creation for the review_status field.
	verificationrecord.DefaultReviewStatus = verificationrecordDescReviewStatus.Default.(string)
	// verificationrecord.ReviewStatusValidator is a validator for the "review_status" field. It is called by the builders before save.
	verificationrecord.ReviewStatusValidator = verificationrecordDescReviewStatus.Validators[0].(func(string) error)
	// verificationrecordDescCreatedAt is the schema descriptor for created_at field.
	verificationrecordDescCreatedAt := verificationrecordFields[7].Descriptor()
	// verificationrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	verificationrecord.DefaultCreatedAt = verificationrecordDescCreatedAt.Default.(func() time.Time)
	// verificationrecordDescID is the schema descriptor for id field.
	verificationrecordDescID := verificationrecordFields[0].Descriptor()
	// verificationrecord.DefaultID holds the default value on creation for the id field.
	verificationrecord.DefaultID = verificationrecordDescID.Default.(func() uuid.UUID)
}

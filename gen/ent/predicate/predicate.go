// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AdmissionRecord is the predicate function for admissionrecord builders.
type AdmissionRecord func(*sql.Selector)

// ProcessedFile is the predicate function for processedfile builders.
type ProcessedFile func(*sql.Selector)

// VerificationRecord is the predicate function for verificationrecord builders.
type VerificationRecord func(*sql.Selector)

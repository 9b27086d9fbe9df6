// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AdmissionRecordsColumns holds the columns for the "admission_records" table.
	AdmissionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "year", Type: field.TypeInt},
		{Name: "round", Type: field.TypeInt},
		{Name: "rank", Type: field.TypeInt},
		{Name: "quota", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "college_name", Type: field.TypeString, Nullable: true},
		{Name: "course", Type: field.TypeString, Nullable: true},
		{Name: "category", Type: field.TypeString, Default: "GENERAL"},
		{Name: "sub_category", Type: field.TypeString, Nullable: true},
		{Name: "gender", Type: field.TypeString, Nullable: true},
		{Name: "physically_handicapped", Type: field.TypeString, Nullable: true},
		{Name: "marks_obtained", Type: field.TypeInt, Nullable: true},
		{Name: "max_marks", Type: field.TypeInt, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "date_of_admission", Type: field.TypeString, Nullable: true},
		{Name: "student_name", Type: field.TypeString, Nullable: true},
		{Name: "exam_roll", Type: field.TypeString, Nullable: true},
		{Name: "stipend", Type: field.TypeString, Nullable: true},
		{Name: "registration_no", Type: field.TypeString, Nullable: true},
		{Name: "council", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AdmissionRecordsTable holds the schema information for the "admission_records" table.
	AdmissionRecordsTable = &schema.Table{
		Name:       "admission_records",
		Columns:    AdmissionRecordsColumns,
		PrimaryKey: []*schema.Column{AdmissionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "admissionrecord_year_round_rank_quota_college_name_course_category",
				Unique:  true,
				Columns: []*schema.Column{AdmissionRecordsColumns[1], AdmissionRecordsColumns[2], AdmissionRecordsColumns[3], AdmissionRecordsColumns[4], AdmissionRecordsColumns[6], AdmissionRecordsColumns[7], AdmissionRecordsColumns[8]},
			},
			{
				Name:    "admissionrecord_rank",
				Unique:  false,
				Columns: []*schema.Column{AdmissionRecordsColumns[3]},
			},
			{
				Name:    "admissionrecord_quota",
				Unique:  false,
				Columns: []*schema.Column{AdmissionRecordsColumns[4]},
			},
			{
				Name:    "admissionrecord_category",
				Unique:  false,
				Columns: []*schema.Column{AdmissionRecordsColumns[8]},
			},
			{
				Name:    "admissionrecord_college_name",
				Unique:  false,
				Columns: []*schema.Column{AdmissionRecordsColumns[6]},
			},
			{
				Name:    "admissionrecord_course",
				Unique:  false,
				Columns: []*schema.Column{AdmissionRecordsColumns[7]},
			},
			{
				Name:    "admissionrecord_year_round",
				Unique:  false,
				Columns: []*schema.Column{AdmissionRecordsColumns[1], AdmissionRecordsColumns[2]},
			},
		},
	}
	// ProcessedFilesColumns holds the columns for the "processed_files" table.
	ProcessedFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "layout", Type: field.TypeString},
		{Name: "records_count", Type: field.TypeInt},
		{Name: "sample_size", Type: field.TypeInt, Nullable: true},
		{Name: "review_status", Type: field.TypeString, Nullable: true},
		{Name: "processed_at", Type: field.TypeTime},
	}
	// ProcessedFilesTable holds the schema information for the "processed_files" table.
	ProcessedFilesTable = &schema.Table{
		Name:       "processed_files",
		Columns:    ProcessedFilesColumns,
		PrimaryKey: []*schema.Column{ProcessedFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processedfile_filename",
				Unique:  true,
				Columns: []*schema.Column{ProcessedFilesColumns[1]},
			},
			{
				Name:    "processedfile_processed_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessedFilesColumns[6]},
			},
		},
	}
	// VerificationRecordsColumns holds the columns for the "verification_records" table.
	VerificationRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "page_number", Type: field.TypeInt},
		{Name: "review_status", Type: field.TypeString, Default: "PENDING"},
		{Name: "reviewer", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "record_id", Type: field.TypeUUID},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// VerificationRecordsTable holds the schema information for the "verification_records" table.
	VerificationRecordsTable = &schema.Table{
		Name:       "verification_records",
		Columns:    VerificationRecordsColumns,
		PrimaryKey: []*schema.Column{VerificationRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "verification_records_admission_records_verifications",
				Columns:    []*schema.Column{VerificationRecordsColumns[6]},
				RefColumns: []*schema.Column{AdmissionRecordsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "verification_records_processed_files_verifications",
				Columns:    []*schema.Column{VerificationRecordsColumns[7]},
				RefColumns: []*schema.Column{ProcessedFilesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "verificationrecord_file_id_review_status",
				Unique:  false,
				Columns: []*schema.Column{VerificationRecordsColumns[7], VerificationRecordsColumns[2]},
			},
			{
				Name:    "verificationrecord_record_id",
				Unique:  false,
				Columns: []*schema.Column{VerificationRecordsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AdmissionRecordsTable,
		ProcessedFilesTable,
		VerificationRecordsTable,
	}
)

func init() {
	AdmissionRecordsTable.Annotation = &entsql.Annotation{
		Table: "admission_records",
	}
	ProcessedFilesTable.Annotation = &entsql.Annotation{
		Table: "processed_files",
	}
	VerificationRecordsTable.ForeignKeys[0].RefTable = AdmissionRecordsTable
	VerificationRecordsTable.ForeignKeys[1].RefTable = ProcessedFilesTable
	VerificationRecordsTable.Annotation = &entsql.Annotation{
		Table: "verification_records",
	}
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type AdmissionRecord struct{ ent.Schema }

func (AdmissionRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "admission_records"},
	}
}

func (AdmissionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.Int("year").Positive(),
		field.Int("round").Positive(),
		field.Int("rank").Positive(),
		field.String("quota").Optional().Nillable(),
		field.String("state").Optional().Nillable(),
		field.String("college_name").Optional().Nillable(),
		field.String("course").Optional().Nillable(),
		field.String("category").Default("GENERAL"),
		field.String("sub_category").Optional().Nillable(),
		field.String("gender").Optional().Nillable(),
		field.String("physically_handicapped").Optional().Nillable(),
		field.Int("marks_obtained").Optional().Nillable(),
		field.Int("max_marks").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		field.String("date_of_admission").Optional().Nillable(),
		// Present only for the state layout.
		field.String("student_name").Optional().Nillable(),
		field.String("exam_roll").Optional().Nillable(),
		field.String("stipend").Optional().Nillable(),
		field.String("registration_no").Optional().Nillable(),
		field.String("council").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (AdmissionRecord) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE record -> MANY verification cross-references
		edge.To("verifications", VerificationRecord.Type),
	}
}

func (AdmissionRecord) Indexes() []ent.Index {
	return []ent.Index{
		// Duplicate suppression boundary: re-importing the same allotment
		// row is rejected by the store and counted as skipped.
		index.Fields("year", "round", "rank", "quota", "college_name", "course", "category").Unique(),
		index.Fields("rank"),
		index.Fields("quota"),
		index.Fields("category"),
		index.Fields("college_name"),
		index.Fields("course"),
		index.Fields("year", "round"),
	}
}

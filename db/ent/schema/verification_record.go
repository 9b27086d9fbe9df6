package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/avesh-singh/neet-pg-checker/constants"
	"github.com/avesh-singh/neet-pg-checker/db/ent/schema/utils"
	"github.com/google/uuid"
)

type VerificationRecord struct{ ent.Schema }

func (VerificationRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "verification_records"},
	}
}

func (VerificationRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("record_id", uuid.UUID{}),
		field.UUID("file_id", uuid.UUID{}),
		field.Int("page_number").Positive(),
		field.String("review_status").
			Default(string(constants.ReviewPending)).
			Validate(utils.EnumValidator(constants.ReviewStatuses...)),
		field.String("reviewer").Optional().Nillable(),
		field.String("notes").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (VerificationRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("record", AdmissionRecord.Type).
			Ref("verifications").
			Field("record_id").
			Unique().
			Required(),
		edge.From("file", ProcessedFile.Type).
			Ref("verifications").
			Field("file_id").
			Unique().
			Required(),
	}
}

func (VerificationRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id", "review_status"),
		index.Fields("record_id"),
	}
}

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

type ProcessedFile struct{ ent.Schema }

func (ProcessedFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processed_files"},
	}
}

func (ProcessedFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// Base filename, not the full path: the same document re-imported
		// from a different directory must still be a no-op.
		field.String("filename").NotEmpty(),
		field.String("layout").NotEmpty().
			Validate(utils.EnumValidator(constants.Layouts()...)),
		field.Int("records_count").NonNegative(),
		field.Int("sample_size").Optional().Nillable(),
		field.String("review_status").Optional().Nillable().
			Validate(utils.EnumValidator(constants.ReviewStatuses...)),
		field.Time("processed_at").Default(time.Now),
	}
}

func (ProcessedFile) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE file -> MANY verification cross-references
		edge.To("verifications", VerificationRecord.Type).
			Annotations(entsql.Annotation{
				OnDelete: entsql.Cascade,
			}),
	}
}

func (ProcessedFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("filename").Unique(),
		index.Fields("processed_at"),
	}
}

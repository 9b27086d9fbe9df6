package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Layout geometry lives here, not scattered through the parsers: when a
// counselling board shuffles its columns the fix is one profile edit.

// StateProfile is the fixed-position geometry of the state allotment table.
type StateProfile struct {
	MinCells   int `json:"min_cells"`
	HeaderRows int `json:"header_rows"`

	StateCol         int `json:"state_col"`
	CollegeCol       int `json:"college_col"`
	CourseCol        int `json:"course_col"`
	StudentCol       int `json:"student_col"`
	GenderCol        int `json:"gender_col"`
	DOBCol           int `json:"dob_col"`
	QuotaCol         int `json:"quota_col"`
	CategoryCol      int `json:"category_col"`
	DisabilityCol    int `json:"disability_col"`
	RollCol          int `json:"roll_col"`
	RankCol          int `json:"rank_col"`
	MarksCol         int `json:"marks_col"`
	StipendCol       int `json:"stipend_col"`
	RegistrationCol  int `json:"registration_col"`
	CouncilCol       int `json:"council_col"`
	AdmissionDateCol int `json:"admission_date_col"`
}

// RoundWindow is one round's disjoint cell range [Start, End) in a
// multi-round row.
type RoundWindow struct {
	Round int `json:"round"`
	Start int `json:"start"`
	End   int `json:"end"`
}

// MultiRoundProfile describes the all-India table that packs up to three
// rounds into one row.
type MultiRoundProfile struct {
	MinCells   int           `json:"min_cells"`
	HeaderRows int           `json:"header_rows"`
	RankCol    int           `json:"rank_col"`
	Windows    []RoundWindow `json:"windows"`

	// Cell-recognition heuristics inside a round window.
	QuotaTokens     []string `json:"quota_tokens"`
	InstituteMinLen int      `json:"institute_min_len"`
	CourseMarkers   []string `json:"course_markers"`
	CategoryTokens  []string `json:"category_tokens"`
}

// SingleRoundProfile is the fixed-position geometry of the one-round
// all-India table.
type SingleRoundProfile struct {
	MinCells   int `json:"min_cells"`
	HeaderRows int `json:"header_rows"`

	RankCol     int `json:"rank_col"`
	QuotaCol    int `json:"quota_col"`
	CollegeCol  int `json:"college_col"`
	CourseCol   int `json:"course_col"`
	CategoryCol int `json:"category_col"`
	StatusCol   int `json:"status_col"`
}

// Profiles bundles the geometry for every known layout.
type Profiles struct {
	State       StateProfile       `json:"state"`
	MultiRound  MultiRoundProfile  `json:"multi_round"`
	SingleRound SingleRoundProfile `json:"single_round"`
}

// DefaultProfiles returns the column geometry observed in the 2024
// counselling documents.
func DefaultProfiles() Profiles {
	return Profiles{
		State: StateProfile{
			MinCells:         11,
			HeaderRows:       1,
			StateCol:         0,
			CollegeCol:       1,
			CourseCol:        2,
			StudentCol:       3,
			GenderCol:        4,
			DOBCol:           5,
			QuotaCol:         6,
			CategoryCol:      7,
			DisabilityCol:    8,
			RollCol:          9,
			RankCol:          10,
			MarksCol:         11,
			StipendCol:       13,
			RegistrationCol:  14,
			CouncilCol:       15,
			AdmissionDateCol: 16,
		},
		MultiRound: MultiRoundProfile{
			MinCells:   5,
			HeaderRows: 3,
			RankCol:    0,
			Windows: []RoundWindow{
				{Round: 1, Start: 1, End: 5},
				{Round: 2, Start: 5, End: 9},
				{Round: 3, Start: 9, End: 15},
			},
			QuotaTokens:     []string{"AI", "IP", "DU", "All India"},
			InstituteMinLen: 10,
			CourseMarkers:   []string{"M.D", "M.S", "MD", "MS", "DNB", "Diploma"},
			CategoryTokens:  []string{"GENERAL", "OBC", "SC", "ST", "EWS"},
		},
		SingleRound: SingleRoundProfile{
			MinCells:    5,
			HeaderRows:  3,
			RankCol:     0,
			QuotaCol:    1,
			CollegeCol:  2,
			CourseCol:   3,
			CategoryCol: 4,
			StatusCol:   5,
		},
	}
}

// LoadProfiles reads a JSON profile file and overlays it on the defaults.
// The file is validated against the profile schema first so a typo'd key
// or negative offset fails loudly instead of silently shifting columns.
func LoadProfiles(path string) (Profiles, error) {
	profiles := DefaultProfiles()
	if path == "" {
		return profiles, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return profiles, fmt.Errorf("read layout profiles: %w", err)
	}
	if err := validateProfilesJSON(data); err != nil {
		return profiles, fmt.Errorf("layout profiles %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &profiles); err != nil {
		return profiles, fmt.Errorf("decode layout profiles: %w", err)
	}
	return profiles, nil
}

// buildProfilesSchema returns a JSON-Schema (draft 2020-12 subset) for the
// layout profile file, as a generic map.
func buildProfilesSchema() map[string]any {
	col := map[string]any{"type": "integer", "minimum": 0}
	counted := map[string]any{"type": "integer", "minimum": 0}
	tokens := map[string]any{
		"type":     "array",
		"items":    map[string]any{"type": "string", "minLength": 1},
		"minItems": 1,
	}

	stateProps := map[string]any{
		"min_cells": counted, "header_rows": counted,
		"state_col": col, "college_col": col, "course_col": col,
		"student_col": col, "gender_col": col, "dob_col": col,
		"quota_col": col, "category_col": col, "disability_col": col,
		"roll_col": col, "rank_col": col, "marks_col": col,
		"stipend_col": col, "registration_col": col, "council_col": col,
		"admission_date_col": col,
	}
	windowProps := map[string]any{
		"round": map[string]any{"type": "integer", "minimum": 1},
		"start": col,
		"end":   map[string]any{"type": "integer", "minimum": 1},
	}
	multiProps := map[string]any{
		"min_cells": counted, "header_rows": counted, "rank_col": col,
		"windows": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties":           windowProps,
				"required":             []string{"round", "start", "end"},
			},
			"minItems": 1,
		},
		"quota_tokens":      tokens,
		"institute_min_len": counted,
		"course_markers":    tokens,
		"category_tokens":   tokens,
	}
	singleProps := map[string]any{
		"min_cells": counted, "header_rows": counted,
		"rank_col": col, "quota_col": col, "college_col": col,
		"course_col": col, "category_col": col, "status_col": col,
	}

	object := func(props map[string]any) map[string]any {
		return map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           props,
		}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"state":        object(stateProps),
			"multi_round":  object(multiProps),
			"single_round": object(singleProps),
		},
	}
}

// validateProfilesJSON validates data against the profile schema.
func validateProfilesJSON(data []byte) error {
	b, err := json.Marshal(buildProfilesSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("profiles.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("profiles.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal profiles: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("profiles do not match schema: %w", err)
	}
	return nil
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextParserStatusAnchoredLine(t *testing.T) {
	parser := TextParser{Year: 2024, Round: 1}
	text := "1201 AI Example Institute of Health Sciences M.D. - Pathology Reported\n" +
		"some header noise without a rank\n" +
		"1305 DU Example College of Health Sciences M.S. - Orthopaedics Not Reported"

	records := parser.ParseText(text)
	require.Len(t, records, 2)

	assert.Equal(t, 1201, records[0].Rank)
	assert.Equal(t, "All India", records[0].Quota)
	assert.Equal(t, "Example Institute of Health Sciences", records[0].CollegeName)
	assert.Equal(t, "M.D. - Pathology", records[0].Course)
	assert.Equal(t, "GENERAL", records[0].Category)
	assert.Equal(t, 1, records[0].Round)
	assert.Equal(t, 2024, records[0].Year)

	assert.Equal(t, 1305, records[1].Rank)
	assert.Equal(t, "Delhi University", records[1].Quota)
	assert.Equal(t, "M.S. - Orthopaedics", records[1].Course)
}

func TestTextParserLooseLineWithoutStatus(t *testing.T) {
	// No reporting-status tail; the looser pattern picks it up.
	records := TextParser{Year: 2024, Round: 2}.ParseText("77012 IP Example Institute of Child Health M.D. Paediatrics")
	require.Len(t, records, 1)
	assert.Equal(t, 77012, records[0].Rank)
	assert.Equal(t, "IP University", records[0].Quota)
	assert.Equal(t, "M.D. Paediatrics", records[0].Course)
}

func TestTextParserIgnoresNonMatchingLines(t *testing.T) {
	text := "NATIONAL BOARD OF EXAMINATIONS\nPage 4 of 112\nRank Quota Institute Course Status"
	assert.Empty(t, TextParser{Year: 2024, Round: 1}.ParseText(text))
}

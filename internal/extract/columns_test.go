package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfileFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfilesEmptyPathReturnsDefaults(t *testing.T) {
	profiles, err := LoadProfiles("")
	require.NoError(t, err)
	assert.Equal(t, DefaultProfiles(), profiles)
}

func TestLoadProfilesOverlaysOnDefaults(t *testing.T) {
	path := writeProfileFile(t, `{"state": {"rank_col": 12, "marks_col": 13}}`)

	profiles, err := LoadProfiles(path)
	require.NoError(t, err)

	assert.Equal(t, 12, profiles.State.RankCol)
	assert.Equal(t, 13, profiles.State.MarksCol)
	// Untouched geometry keeps the defaults.
	assert.Equal(t, DefaultProfiles().State.CollegeCol, profiles.State.CollegeCol)
	assert.Equal(t, DefaultProfiles().MultiRound, profiles.MultiRound)
}

func TestLoadProfilesRejectsUnknownKey(t *testing.T) {
	path := writeProfileFile(t, `{"state": {"rnak_col": 12}}`)

	_, err := LoadProfiles(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestLoadProfilesRejectsNegativeColumn(t *testing.T) {
	path := writeProfileFile(t, `{"single_round": {"rank_col": -1}}`)

	_, err := LoadProfiles(path)
	require.Error(t, err)
}

func TestLoadProfilesMissingFile(t *testing.T) {
	_, err := LoadProfiles(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestDefaultProfilesRoundWindowsAreDisjoint(t *testing.T) {
	windows := DefaultProfiles().MultiRound.Windows
	require.Len(t, windows, 3)
	for i := 1; i < len(windows); i++ {
		assert.Equal(t, windows[i-1].End, windows[i].Start)
		assert.Equal(t, windows[i-1].Round+1, windows[i].Round)
	}
}

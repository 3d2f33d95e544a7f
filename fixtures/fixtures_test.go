package fixtures

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/hospital-api/models"
)

func TestSampleResolves(t *testing.T) {
	set, err := Sample()
	require.NoError(t, err)

	data, err := set.Resolve()
	require.NoError(t, err)

	assert.Len(t, data.Users, 8)
	assert.Len(t, data.Profiles, 7)
	assert.Len(t, data.Appointments, 8)
	assert.Len(t, data.Schedules, 6)

	for _, p := range data.Profiles {
		assert.NoError(t, models.Validate(&p), p.Name)
	}
	for _, a := range data.Appointments {
		assert.NoError(t, models.Validate(&a), a.PatientName)
	}
	assert.Equal(t, "John Doe", data.Appointments[0].PatientName)
	assert.Equal(t, time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC), data.Appointments[0].ScheduledAt)
}

func TestResolveUnknownDoctor(t *testing.T) {
	set := &Set{
		Patients:     []Patient{{Key: "p", Name: "P"}},
		Appointments: []Appointment{{Patient: "p", Doctor: "ghost"}},
	}

	_, err := set.Resolve()

	assert.ErrorContains(t, err, "unknown doctor")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "set.yaml")
	require.NoError(t, os.WriteFile(path, []byte("doctors:\n  - key: d\n    name: Dr D\n    email: D@X.io\n"), 0o600))

	set, err := LoadFile(path)
	require.NoError(t, err)

	data, err := set.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "d@x.io", data.Users[0].Email)
}

func TestParseWeekday(t *testing.T) {
	wd, err := ParseWeekday("friday")
	assert.NoError(t, err)
	assert.Equal(t, time.Friday, wd)

	_, err = ParseWeekday("Funday")
	assert.Error(t, err)
}

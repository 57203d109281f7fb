package verify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadBatchFile(t *testing.T) {
	path := writeFile(t, "batch.json", `{
		"name": "tower-A walls",
		"members": [
			{
				"name": "W-1",
				"length": 3000, "thickness": 250, "height": 7500,
				"fc": 28, "fy": 420,
				"reinforcement": {"rho_h": 0.0025, "fyt": 420},
				"combinations": [
					{"name": "1.2D+1.0E", "shear_1": 500, "axial": 2000}
				]
			},
			{
				"length": 600, "thickness": 300, "height": 3000,
				"fc": 25, "fy": 420,
				"reinforcement": {"area": 157, "spacing": 150, "fyt": 420}
			}
		]
	}`)

	batch, err := LoadBatchFile(path)
	require.NoError(t, err)

	require.Len(t, batch.Members, 2)
	assert.Equal(t, "tower-A walls", batch.Name)
	assert.Equal(t, "W-1", batch.Members[0].Name)
	assert.Equal(t, "member-2", batch.Members[1].Name, "unnamed members are auto-named by position")
	assert.InDelta(t, 0.0025, batch.Members[0].Reinforcement.RhoH, 1e-12)
	require.Len(t, batch.Members[0].Combinations, 1)
	assert.InDelta(t, 500.0, batch.Members[0].Combinations[0].Shear1, 1e-12)
}

func TestLoadBatchFileErrors(t *testing.T) {
	_, err := LoadBatchFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadBatchFile(writeFile(t, "bad.json", `{not json`))
	assert.ErrorContains(t, err, "parsing batch file")

	_, err = LoadBatchFile(writeFile(t, "empty.json", `{"members": []}`))
	assert.ErrorContains(t, err, "defines no members")
}

func TestLoadGroupFile(t *testing.T) {
	path := writeFile(t, "group.json", `{
		"name": "core",
		"fc": 25,
		"demand": 50,
		"segments": [
			{"name": "W1", "vn": 100, "shear_area": 15000},
			{"name": "W2", "vn": 80, "length": 1500, "thickness": 10}
		]
	}`)

	group, err := LoadGroupFile(path)
	require.NoError(t, err)

	assert.Equal(t, "core", group.Name)
	assert.Equal(t, 25.0, group.Fc)
	require.Len(t, group.Members, 2)
	assert.Equal(t, 15000.0, group.Members[0].ShearArea)
}

func TestLoadGroupFileErrors(t *testing.T) {
	_, err := LoadGroupFile(writeFile(t, "nofc.json", `{
		"fc": 0, "segments": [{"name": "W1", "vn": 100}]
	}`))
	assert.ErrorContains(t, err, "f'c must be positive")

	_, err = LoadGroupFile(writeFile(t, "noseg.json", `{"fc": 25, "segments": []}`))
	assert.ErrorContains(t, err, "defines no segments")
}

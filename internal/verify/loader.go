package verify

import (
	"encoding/json"
	"fmt"
	"os"
)

// BatchFile is the JSON input document for a batch run.
type BatchFile struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Members     []Member `json:"members"`
}

// LoadBatchFile loads and validates a batch definition from a JSON
// file. Validation here rejects only structurally unusable input;
// numeric edge cases (bad geometry, missing moments) are handled per
// member during verification so one bad row cannot halt the batch.
func LoadBatchFile(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var batch BatchFile
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parsing batch file %s: %w", path, err)
	}

	if len(batch.Members) == 0 {
		return nil, fmt.Errorf("batch file %s defines no members", path)
	}
	for i, m := range batch.Members {
		if m.Name == "" {
			batch.Members[i].Name = fmt.Sprintf("member-%d", i+1)
		}
	}

	return &batch, nil
}

// GroupFile is the JSON input document for a connected wall group
// check.
type GroupFile struct {
	Name    string  `json:"name,omitempty"`
	Fc      float64 `json:"fc"`     // shared concrete strength (MPa)
	Demand  float64 `json:"demand"` // total lateral demand (kN)
	Members []struct {
		Name      string  `json:"name"`
		Vn        float64 `json:"vn"`         // nominal strength (kN)
		Length    float64 `json:"length"`     // mm
		Thickness float64 `json:"thickness"`  // mm
		ShearArea float64 `json:"shear_area"` // overrides length×thickness (mm²)
	} `json:"segments"`
}

// LoadGroupFile loads a wall group definition from a JSON file.
func LoadGroupFile(path string) (*GroupFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var group GroupFile
	if err := json.Unmarshal(data, &group); err != nil {
		return nil, fmt.Errorf("parsing group file %s: %w", path, err)
	}
	if len(group.Members) == 0 {
		return nil, fmt.Errorf("group file %s defines no segments", path)
	}
	if group.Fc <= 0 {
		return nil, fmt.Errorf("group file %s: f'c must be positive", path)
	}

	return &group, nil
}

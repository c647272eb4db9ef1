package models

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const SaveDir = ".saves"

// Save writes the cycle report and the snapshot it was decided against to
// SaveDir/name as YAML files.
func (r *CycleReport) Save(name string, snap *Snapshot) error {
	dir := filepath.Join(SaveDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	reportData, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "report.yaml"), reportData, 0644); err != nil {
		return err
	}

	if snap != nil {
		snapData, err := yaml.Marshal(snap)
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, "snapshot.yaml"), snapData, 0644); err != nil {
			return err
		}
	}

	return nil
}

// LoadReport reads a previously saved cycle report.
func LoadReport(name string) (*CycleReport, error) {
	data, err := os.ReadFile(filepath.Join(SaveDir, name, "report.yaml"))
	if err != nil {
		return nil, err
	}
	var report CycleReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// ListReports returns the names of saved cycle reports.
func ListReports() ([]string, error) {
	if _, err := os.Stat(SaveDir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(SaveDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			// Check if report.yaml exists as a marker for a valid report
			reportPath := filepath.Join(SaveDir, entry.Name(), "report.yaml")
			if _, err := os.Stat(reportPath); err == nil {
				names = append(names, entry.Name())
			}
		}
	}
	return names, nil
}

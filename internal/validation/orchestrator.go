package validation

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/dataset"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

// FileReport is the validation outcome for one data file.
type FileReport struct {
	FileExists        bool           `json:"file_exists"`
	StructureValid    bool           `json:"structure_valid"`
	ValidationMessage string         `json:"validation_message"`
	QualityReport     *QualityReport `json:"quality_report,omitempty"`
	IntegrityIssues   []string       `json:"integrity_issues,omitempty"`
	Err               string         `json:"error,omitempty"`
}

type fileConfig struct {
	expectedColumns []string
	numericColumns  []string
	checkIntegrity  func(*models.Table) []string
}

// dataFileConfigs describes the known data files and their validation
// rules.
var dataFileConfigs = map[string]fileConfig{
	dataset.HappinessFileName: {
		expectedColumns: []string{"RANK", "Country", "Happiness_score", "GDP_per_capita"},
		numericColumns:  []string{"RANK", "Happiness_score", "GDP_per_capita"},
		checkIntegrity:  CheckHappinessData,
	},
	dataset.UniversityFileName: {
		expectedColumns: []string{"Year", "Term", "Applications", "Admitted", "Enrolled"},
		numericColumns:  []string{"Year", "Applications", "Admitted", "Enrolled"},
		checkIntegrity:  CheckUniversityData,
	},
}

// ValidateDataDir validates every known data file under dir: structure
// check, then load, clean, quality report and integrity check. Problems
// are captured per file, never returned as an error.
func ValidateDataDir(dir string) map[string]*FileReport {
	results := make(map[string]*FileReport, len(dataFileConfigs))

	for filename, config := range dataFileConfigs {
		path := filepath.Join(dir, filename)
		valid, message := ValidateCSVStructure(path, config.expectedColumns)

		report := &FileReport{
			FileExists:        fileExists(path),
			StructureValid:    valid,
			ValidationMessage: message,
		}
		results[filename] = report

		if !valid || !report.FileExists {
			continue
		}

		table, err := dataset.ReadCSVFile(path)
		if err != nil {
			report.Err = fmt.Sprintf("Error processing file: %v", err)
			continue
		}

		cleaned := CleanTable(table, config.numericColumns)
		report.QualityReport = BuildQualityReport(cleaned)
		if config.checkIntegrity != nil {
			report.IntegrityIssues = config.checkIntegrity(cleaned)
		}
	}

	return results
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

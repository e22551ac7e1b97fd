// Package csvexport assembles the console's report downloads. The format is
// deliberately the console's own, not RFC 4180: the header row comes from
// the first record's field order, and a value is quoted only when it
// contains a comma. Embedded quotes and newlines are not escaped; that gap
// is part of the documented format.
package csvexport

import (
	"fmt"
	"strings"
	"time"

	"github.com/airmedops/medevac-console/internal/derive"
	"github.com/airmedops/medevac-console/internal/fixtures"
	"github.com/airmedops/medevac-console/internal/types"
)

// Fixed download filenames, one per report
const (
	MissionsExportFilename = "missions-export.csv"
	PatientsExportFilename = "patients-export.csv"
	MissionsReportFilename = "missions-report.csv"
	PatientsReportFilename = "patients-report.csv"
)

// Field is one named value in a row
type Field struct {
	Key   string
	Value interface{}
}

// Row is an ordered record; field order is preserved into the output
type Row []Field

func (r Row) get(key string) (interface{}, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Saver receives the assembled document. It exists so callers can observe
// the side effect, or its absence, in tests.
type Saver interface {
	Save(filename, content string) error
}

// SaverFunc adapts a function to the Saver interface
type SaverFunc func(filename, content string) error

// Save calls f
func (f SaverFunc) Save(filename, content string) error {
	return f(filename, content)
}

func formatValue(v interface{}) string {
	s, isString := v.(string)
	if !isString {
		return fmt.Sprint(v)
	}
	if strings.Contains(s, ",") {
		return `"` + s + `"`
	}
	return s
}

// Document renders rows as CSV text. The header is the first row's keys;
// every row is emitted in that key order. Empty input yields an empty
// document.
func Document(rows []Row) string {
	if len(rows) == 0 {
		return ""
	}

	headers := make([]string, len(rows[0]))
	for i, f := range rows[0] {
		headers[i] = f.Key
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(headers, ","))
	for _, row := range rows {
		cells := make([]string, len(headers))
		for i, h := range headers {
			if v, ok := row.get(h); ok {
				cells[i] = formatValue(v)
			}
		}
		lines = append(lines, strings.Join(cells, ","))
	}
	return strings.Join(lines, "\n")
}

// Export assembles the document and hands it to the saver under the given
// filename. An empty row set is a no-op: nothing is saved and no error is
// reported.
func Export(rows []Row, filename string, saver Saver) error {
	if len(rows) == 0 {
		return nil
	}
	if err := saver.Save(filename, Document(rows)); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return nil
}

// MissionExportRows builds the mission list export
func MissionExportRows(missions []types.Mission) []Row {
	rows := make([]Row, 0, len(missions))
	for _, m := range missions {
		rows = append(rows, Row{
			{Key: "Mission ID", Value: m.ID},
			{Key: "Name", Value: m.Name},
			{Key: "Type", Value: derive.MissionTypeLabel(m.Type)},
			{Key: "Status", Value: string(m.Status)},
			{Key: "Origin", Value: m.Origin},
			{Key: "Destination", Value: m.Destination},
			{Key: "ETD", Value: m.ETD.Format(time.RFC3339)},
			{Key: "ETA", Value: m.ETA.Format(time.RFC3339)},
			{Key: "Patients", Value: len(m.Patients)},
			{Key: "Aircraft", Value: m.Aircraft.TailNumber},
		})
	}
	return rows
}

// MissionReportRows builds the reports-page mission export, which also
// carries the commander
func MissionReportRows(missions []types.Mission) []Row {
	rows := MissionExportRows(missions)
	for i, m := range missions {
		rows[i] = append(rows[i], Field{Key: "Commander", Value: m.Commander})
	}
	return rows
}

// PatientExportRows builds the patient list export, tagged with the owning
// mission
func PatientExportRows(patients []fixtures.PatientRecord) []Row {
	rows := make([]Row, 0, len(patients))
	for _, p := range patients {
		rows = append(rows, Row{
			{Key: "Patient ID", Value: p.ID},
			{Key: "Name", Value: p.Name},
			{Key: "Age", Value: p.Age},
			{Key: "Gender", Value: p.Gender},
			{Key: "Diagnosis", Value: p.Diagnosis},
			{Key: "Severity", Value: string(p.Severity)},
			{Key: "Status", Value: string(p.Status)},
			{Key: "Cabin Position", Value: p.CabinPosition},
			{Key: "Mission", Value: p.MissionName},
		})
	}
	return rows
}

// PatientReportRows builds the reports-page patient export
func PatientReportRows(patients []types.Patient) []Row {
	rows := make([]Row, 0, len(patients))
	for _, p := range patients {
		rows = append(rows, Row{
			{Key: "Patient ID", Value: p.ID},
			{Key: "Name", Value: p.Name},
			{Key: "Age", Value: p.Age},
			{Key: "Gender", Value: p.Gender},
			{Key: "Severity", Value: string(p.Severity)},
			{Key: "Diagnosis", Value: p.Diagnosis},
			{Key: "Status", Value: string(p.Status)},
			{Key: "Cabin Position", Value: p.CabinPosition},
		})
	}
	return rows
}

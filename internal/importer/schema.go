package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Header is the stable column contract of the bulk upload format: one row
// per (project, module, gateway) fact. Columns are matched by header name,
// order-insensitive; names follow the relational archive columns.
var Header = []string{
	"project_name",
	"project_type",
	"module_name",
	"gateway",
	"plan_date",
	"actual_date",
	"ecn",
}

// Row is one parsed upload record. All fields are raw strings; validation
// happens before any merge.
type Row struct {
	Line        int // 1-based data row number, for error reporting
	ProjectName string
	ProjectType string
	ModuleName  string
	Gateway     string
	PlanDate    string
	ActualDate  string
	ChangeRef   string
}

// Template returns the header-only CSV producers fill in.
func Template() string {
	return strings.Join(Header, ",") + "\n"
}

// ParseCSV reads the upload format. The header row is required and must
// contain exactly the contract columns; data columns are bound by name.
func ParseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index, err := bindHeader(header)
	if err != nil {
		return nil, err
	}

	var rows []Row
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", line+1, err)
		}
		line++
		rows = append(rows, Row{
			Line:        line,
			ProjectName: field(record, index["project_name"]),
			ProjectType: field(record, index["project_type"]),
			ModuleName:  field(record, index["module_name"]),
			Gateway:     field(record, index["gateway"]),
			PlanDate:    field(record, index["plan_date"]),
			ActualDate:  field(record, index["actual_date"]),
			ChangeRef:   field(record, index["ecn"]),
		})
	}
	return rows, nil
}

func bindHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.ToLower(name))
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = i
	}

	known := make(map[string]bool, len(Header))
	for _, name := range Header {
		known[name] = true
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	for i, name := range header {
		name = strings.TrimSpace(strings.ToLower(name))
		if !known[name] {
			return nil, fmt.Errorf("unknown column %q at position %d", header[i], i+1)
		}
	}
	return index, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

package export

import (
	"fmt"
	"strings"
)

// Formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

const (
	ContentTypeCSV  = "text/csv; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Table is a header row plus string rows. Columns listed in FreeText are always quoted in CSV.
type Table struct {
	Headers  []string
	Rows     [][]string
	FreeText []int
}

func NewTable(headers ...string) *Table {
	return &Table{Headers: headers, Rows: [][]string{}}
}

// WithFreeText marks columns, by header name, that hold user-entered text.
func (t *Table) WithFreeText(headers ...string) *Table {
	for _, name := range headers {
		for i, h := range t.Headers {
			if h == name {
				t.FreeText = append(t.FreeText, i)
			}
		}
	}
	return t
}

func (t *Table) AddRow(fields ...string) {
	t.Rows = append(t.Rows, fields)
}

func (t *Table) isFreeText(col int) bool {
	for _, c := range t.FreeText {
		if c == col {
			return true
		}
	}
	return false
}

// File is a rendered download.
type File struct {
	FileName    string
	ContentType string
	Content     []byte
}

// Stem builds "<domain>_<date>", the file name without extension.
func Stem(domain, date string) string {
	return domain + "_" + date
}

// ReportStem builds "<type>_report_<from>_to_<to>".
func ReportStem(reportType, from, to string) string {
	return fmt.Sprintf("%s_report_%s_to_%s", reportType, from, to)
}

// FileName builds "<domain>_<date>.<format>".
func FileName(domain, date, format string) string {
	return Stem(domain, date) + "." + format
}

// ReportFileName builds "<type>_report_<from>_to_<to>.<format>".
func ReportFileName(reportType, from, to, format string) string {
	return ReportStem(reportType, from, to) + "." + format
}

// Render serializes the table in the requested format. The file name stem gets the format's extension.
func Render(table *Table, stem, format string) (File, error) {
	switch strings.ToLower(format) {
	case "", FormatCSV:
		return File{
			FileName:    stem + "." + FormatCSV,
			ContentType: ContentTypeCSV,
			Content:     []byte(CSV(table)),
		}, nil
	case FormatXLSX:
		content, err := XLSX(table, sheetName(stem))
		if err != nil {
			return File{}, err
		}
		return File{
			FileName:    stem + "." + FormatXLSX,
			ContentType: ContentTypeXLSX,
			Content:     content,
		}, nil
	default:
		return File{}, fmt.Errorf("unsupported export format %q", format)
	}
}

// Sheet names are limited to 31 characters.
func sheetName(stem string) string {
	name := strings.SplitN(stem, "_", 2)[0]
	if name == "" {
		return "Sheet1"
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}

package export

import (
	"strings"
)

// CSV renders the table as comma-separated text: header row, then one line per row joined
// with "\n" and no trailing newline.
func CSV(t *Table) string {
	var b strings.Builder

	writeLine(&b, t.Headers, nil)
	for _, row := range t.Rows {
		b.WriteByte('\n')
		writeLine(&b, row, t)
	}
	return b.String()
}

func writeLine(b *strings.Builder, fields []string, t *Table) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		forced := t != nil && t.isFreeText(i)
		b.WriteString(escapeField(field, forced))
	}
}

// escapeField quotes a field holding a comma, quote, CR or LF, or when forced. Quotes are doubled.
func escapeField(field string, forced bool) string {
	if !forced && !strings.ContainsAny(field, ",\"\r\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

// Package table renders rows as markdown tables from a column specification.
package table

import (
	"fmt"
	"math"
	"strings"
)

// NotAvailable is the default marker for absent cells.
const NotAvailable = "N/A"

// Column describes one table column. Format returns false when the cell is absent,
// in which case Absent (or NotAvailable) is rendered instead.
type Column[R any] struct {
	Header string
	Width  int
	Absent string
	Format func(row R) (string, bool)
}

// Render writes the markdown table for rows to a string.
func Render[R any](columns []Column[R], rows []R) string {
	var sb strings.Builder
	Write(&sb, columns, rows)
	return sb.String()
}

// Write appends the markdown table for rows to sb.
func Write[R any](sb *strings.Builder, columns []Column[R], rows []R) {
	sb.WriteString("|")
	for _, col := range columns {
		sb.WriteString(" " + pad(col.Header, col.width()) + " |")
	}
	sb.WriteString("\n|")
	for _, col := range columns {
		sb.WriteString(strings.Repeat("-", max(len(col.Header), col.Width)+2) + "|")
	}
	sb.WriteString("\n")

	for _, row := range rows {
		sb.WriteString("|")
		for _, col := range columns {
			sb.WriteString(" " + pad(cell(col, row), col.width()) + " |")
		}
		sb.WriteString("\n")
	}
}

// width is the padded cell width; zero leaves cells unpadded.
func (c Column[R]) width() int {
	if c.Width <= 0 {
		return 0
	}
	return max(c.Width, len(c.Header))
}

func cell[R any](col Column[R], row R) string {
	if col.Format != nil {
		if text, ok := col.Format(row); ok {
			return text
		}
	}
	if col.Absent != "" {
		return col.Absent
	}
	return NotAvailable
}

func pad(text string, width int) string {
	if width <= 0 || len(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-len(text))
}

// Fixed formats v with two decimals. Nil and non-finite values are absent.
func Fixed(v *float64) (string, bool) {
	if v == nil {
		return "", false
	}
	return decimals(*v)
}

// Percent formats a fractional rate as a percentage with two decimals.
func Percent(v *float64) (string, bool) {
	if v == nil {
		return "", false
	}
	return decimals(*v * 100)
}

func decimals(v float64) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", false
	}
	return fmt.Sprintf("%.2f", v), true
}

// Text formats a string cell; empty strings are absent.
func Text(s string) (string, bool) {
	return s, s != ""
}

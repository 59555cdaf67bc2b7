package report

import (
	"strings"

	"yieldScope/internal/table"
)

const (
	matrixDiagonal   = "-"
	matrixNoData     = "X"
	matrixCorner     = "collateral/loan"
	matrixLabelWidth = 16
	matrixCellWidth  = 10
)

// Matrix relates collateral assets (rows) to loan assets (columns) by average APY.
type Matrix struct {
	assets []string
	index  map[string]int
	cells  map[[2]int]float64
}

func NewMatrix(assets []string) *Matrix {
	index := make(map[string]int, len(assets))
	for i, asset := range assets {
		index[asset] = i
	}
	return &Matrix{
		assets: append([]string(nil), assets...),
		index:  index,
		cells:  make(map[[2]int]float64),
	}
}

// Set records the average APY of a collateral/loan pair. Pairs outside the asset
// list and diagonal pairs are ignored; the return value reports whether the cell was set.
func (m *Matrix) Set(collateral, loan string, avg float64) bool {
	row, ok := m.index[collateral]
	if !ok {
		return false
	}
	col, ok := m.index[loan]
	if !ok || row == col {
		return false
	}
	m.cells[[2]int{row, col}] = avg
	return true
}

// Cell returns the rendered cell for a collateral/loan pair.
func (m *Matrix) Cell(collateral, loan string) string {
	row, rowOK := m.index[collateral]
	col, colOK := m.index[loan]
	if rowOK && colOK && row == col {
		return matrixDiagonal
	}
	avg, ok := m.cells[[2]int{row, col}]
	if !rowOK || !colOK || !ok {
		return matrixNoData
	}
	text, ok := table.Percent(&avg)
	if !ok {
		return matrixNoData
	}
	return text + "%"
}

// Assets returns the matrix assets in row order.
func (m *Matrix) Assets() []string {
	return append([]string(nil), m.assets...)
}

// RenderMatrix renders the square collateral/loan table. The label column is
// padded to 16 in rows only; the header keeps its natural width.
func RenderMatrix(m *Matrix) string {
	var sb strings.Builder

	sb.WriteString("| " + matrixCorner + " |")
	for _, loan := range m.assets {
		sb.WriteString(" " + padRight(loan, matrixCellWidth) + " |")
	}
	sb.WriteString("\n|" + strings.Repeat("-", matrixLabelWidth) + "|")
	for _, loan := range m.assets {
		sb.WriteString(strings.Repeat("-", max(len(loan), matrixCellWidth)+2) + "|")
	}
	sb.WriteString("\n")

	for _, collateral := range m.assets {
		sb.WriteString("| " + padRight(collateral, matrixLabelWidth) + " |")
		for _, loan := range m.assets {
			sb.WriteString(" " + padRight(m.Cell(collateral, loan), matrixCellWidth) + " |")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func padRight(text string, width int) string {
	if len(text) >= width {
		return text
	}
	return text + strings.Repeat(" ", width-len(text))
}

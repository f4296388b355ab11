package csvimport

import (
	"strings"

	"github.com/kpauljoseph/datealingo/pkg/models"
)

const (
	byteOrderMark = "\uFEFF"

	msgUnclosedQuote = "Unclosed quote in CSV input."
	msgEmptyInput    = "CSV input is empty."
)

// tokenize splits raw text into rows of cells. Rows made only of blank cells
// are dropped. A non-nil error means the input ended inside a quoted field.
func tokenize(raw string) ([][]string, *models.RowError) {
	source := []rune(strings.TrimPrefix(raw, byteOrderMark))

	var (
		rows     [][]string
		row      []string
		cell     strings.Builder
		inQuotes bool
		line     = 1
	)

	flushCell := func() {
		row = append(row, cell.String())
		cell.Reset()
	}

	for i := 0; i < len(source); i++ {
		char := source[i]

		if inQuotes {
			switch {
			case char == '"' && i+1 < len(source) && source[i+1] == '"':
				cell.WriteRune('"')
				i++
			case char == '"':
				inQuotes = false
			default:
				if char == '\n' {
					line++
				}
				cell.WriteRune(char)
			}
			continue
		}

		switch char {
		case '"':
			inQuotes = true
		case ',':
			flushCell()
		case '\r', '\n':
			if char == '\r' && i+1 < len(source) && source[i+1] == '\n' {
				i++
			}
			flushCell()
			rows = append(rows, row)
			row = nil
			line++
		default:
			cell.WriteRune(char)
		}
	}

	if inQuotes {
		return nil, &models.RowError{Row: line, Message: msgUnclosedQuote}
	}

	if cell.Len() > 0 || len(row) > 0 {
		flushCell()
		rows = append(rows, row)
	}

	nonBlank := rows[:0]
	for _, r := range rows {
		if !blankRow(r) {
			nonBlank = append(nonBlank, r)
		}
	}
	return nonBlank, nil
}

func blankRow(cells []string) bool {
	for _, value := range cells {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}

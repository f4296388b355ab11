package csvimport

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/kpauljoseph/datealingo/pkg/models"
)

var (
	ErrInvalidCSV = errors.New("invalid CSV")
	ErrNoRows     = errors.New("We could not find valid rows. Try loading the sample rows to compare format.")
)

// ImportError carries every diagnostic of a rejected import.
type ImportError struct {
	Errors []models.RowError
}

func (e *ImportError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("%v: %v", ErrInvalidCSV, e.Errors[0])
	}
	return fmt.Sprintf("%v: %d problems, first at %v", ErrInvalidCSV, len(e.Errors), e.Errors[0])
}

func (e *ImportError) Unwrap() error {
	return ErrInvalidCSV
}

// Import is all-or-nothing: any diagnostic rejects the whole input, including
// rows that validated on their own.
func Import(raw string) ([]models.VocabCard, error) {
	result := Parse(raw)
	if !result.OK() {
		return nil, &ImportError{Errors: result.Errors}
	}
	if len(result.Cards) == 0 {
		return nil, ErrNoRows
	}
	return result.Cards, nil
}

var headerMessage = regexp.MustCompile(`(?i)header`)

// SplitErrors separates header diagnostics from row diagnostics, keeping order.
func SplitErrors(errs []models.RowError) (header, rows []models.RowError) {
	for _, e := range errs {
		if headerMessage.MatchString(e.Message) {
			header = append(header, e)
		} else {
			rows = append(rows, e)
		}
	}
	return header, rows
}

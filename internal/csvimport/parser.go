package csvimport

import (
	"fmt"
	"strings"

	"github.com/kpauljoseph/datealingo/pkg/models"
)

var (
	RequiredHeaders = []string{"id", "jp", "hira", "en", "example", "translation"}
	OptionalHeaders = []string{"romaji", "zh", "cat"}
)

var knownHeaders = func() map[string]struct{} {
	known := make(map[string]struct{}, len(RequiredHeaders)+len(OptionalHeaders))
	for _, name := range append(append([]string{}, RequiredHeaders...), OptionalHeaders...) {
		known[name] = struct{}{}
	}
	return known
}()

// Result holds everything a single Parse call produced. Cards only contains
// rows that passed validation; callers must check OK before using them.
type Result struct {
	Cards  []models.VocabCard
	Errors []models.RowError
}

func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// Parse tokenizes and validates raw CSV text. Structural and header problems
// stop parsing; row problems are collected for every row.
func Parse(raw string) Result {
	if strings.TrimSpace(raw) == "" {
		return failed(models.RowError{Row: 1, Message: msgEmptyInput})
	}

	rows, rowErr := tokenize(raw)
	if rowErr != nil {
		return failed(*rowErr)
	}
	if len(rows) == 0 {
		return failed(models.RowError{Row: 1, Message: msgEmptyInput})
	}

	header := make([]string, len(rows[0]))
	for i, name := range rows[0] {
		header[i] = strings.TrimSpace(name)
	}

	if headerErrs := validateHeader(header); len(headerErrs) > 0 {
		return Result{Errors: headerErrs}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	var result Result
	seenIDs := make(map[string]struct{})

	for i := 1; i < len(rows); i++ {
		values := rows[i]
		if blankRow(values) {
			continue
		}

		get := func(field string) string {
			col, ok := index[field]
			if !ok || col >= len(values) {
				return ""
			}
			return strings.TrimSpace(values[col])
		}

		var issues []string
		for _, field := range RequiredHeaders {
			if get(field) == "" {
				issues = append(issues, field+" is required")
			}
		}

		id := get("id")
		if _, dup := seenIDs[id]; id != "" && dup {
			issues = append(issues, "duplicate id: "+id)
		}

		if len(issues) > 0 {
			result.Errors = append(result.Errors, models.RowError{
				Row:     i + 1,
				Message: strings.Join(issues, "; "),
			})
			continue
		}

		seenIDs[id] = struct{}{}
		result.Cards = append(result.Cards, models.VocabCard{
			ID:          id,
			JP:          get("jp"),
			Hira:        get("hira"),
			EN:          get("en"),
			Example:     get("example"),
			Translation: get("translation"),
			Romaji:      models.Optional(get("romaji")),
			ZH:          models.Optional(get("zh")),
			Cat:         models.Optional(get("cat")),
		})
	}

	return result
}

func validateHeader(header []string) []models.RowError {
	var errs []models.RowError

	seen := make(map[string]struct{}, len(header))
	var distinct []string
	for _, name := range header {
		if _, ok := seen[name]; ok {
			errs = append(errs, headerError("Duplicate header: %s", name))
			continue
		}
		seen[name] = struct{}{}
		distinct = append(distinct, name)
	}

	for _, name := range append(append([]string{}, RequiredHeaders...), OptionalHeaders...) {
		if _, ok := seen[name]; !ok {
			errs = append(errs, headerError("Missing header: %s", name))
		}
	}

	for _, name := range distinct {
		if _, ok := knownHeaders[name]; !ok {
			errs = append(errs, headerError("Unknown header: %s", name))
		}
	}

	return errs
}

func headerError(format, name string) models.RowError {
	return models.RowError{Row: 1, Message: fmt.Sprintf(format, name)}
}

func failed(err models.RowError) Result {
	return Result{Errors: []models.RowError{err}}
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/kpauljoseph/datealingo/internal/csvimport"
	"github.com/kpauljoseph/datealingo/internal/session"
	"github.com/kpauljoseph/datealingo/pkg/models"
)

func printDiagnostics(w io.Writer, errs []models.RowError) {
	headerErrs, rowErrs := csvimport.SplitErrors(errs)
	for _, group := range []struct {
		title string
		errs  []models.RowError
	}{
		{"Header problems", headerErrs},
		{"Row problems", rowErrs},
	} {
		if len(group.errs) == 0 {
			continue
		}
		rows := make([][]string, 0, len(group.errs))
		for _, e := range group.errs {
			rows = append(rows, []string{strconv.Itoa(e.Row), e.Message})
		}
		fmt.Fprintln(w, paint(w, text.Colors{text.FgRed, text.Bold}, group.title))
		fmt.Fprintln(w, renderTable([]string{"Row", "Message"}, rows, []columnAlignment{alignRight, alignLeft}))
	}
}

func printCard(w io.Writer, view *studyView) {
	memorized, total := session.Progress(view.state, view.cards)
	current, ok := session.Current(view.state, view.cards)
	if !ok {
		fmt.Fprintf(w, "%d/%d memorized\n", memorized, total)
		fmt.Fprintln(w, paint(w, text.Colors{text.Bold}, "No cards left in active deck"))
		fmt.Fprintln(w, "All cards are memorized. Restart, reset, or import a new deck.")
		return
	}

	active := session.Active(view.state, view.cards)
	fmt.Fprintf(w, "Card %d of %d  ·  %d/%d memorized\n", view.state.Cursor+1, len(active), memorized, total)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", paint(w, text.Colors{text.Bold}, current.Front(view.front)))
	if view.state.IsMemorized(current.ID) {
		fmt.Fprintln(w, "  (memorized)")
	}
	fmt.Fprintln(w)
	if next, ok := session.Next(view.state, view.cards); ok {
		fmt.Fprintf(w, "Next: %s\n", next.Front(view.front))
	}
}

func printFlipped(w io.Writer, view *studyView) {
	current, ok := session.Current(view.state, view.cards)
	if !ok {
		printCard(w, view)
		return
	}

	lines := [][2]string{
		{"Word", current.JP},
		{"Reading", current.Hira},
		{"Romaji", models.Deref(current.Romaji)},
		{"Meaning", current.EN},
		{"Chinese", models.Deref(current.ZH)},
		{"Category", models.Deref(current.Cat)},
		{"Example", current.Example},
		{"Translation", current.Translation},
	}
	for _, line := range lines {
		if line[1] == "" {
			continue
		}
		fmt.Fprintf(w, "%-12s %s\n", line[0]+":", line[1])
	}
}

func onOff(flag bool) string {
	if flag {
		return "on"
	}
	return "off"
}

func parseOnOff(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", value)
}

package render

import (
	"fmt"
	"io"
	"strconv"
)

// SummaryRow is one deck's line in the run summary.
type SummaryRow struct {
	Deck      string
	Status    string
	Questions int
	Detail    string // topic code when parsed, otherwise the skip reason
}

// WriteSummary renders the per-deck outcome table.
func WriteSummary(w io.Writer, rows []SummaryRow) error {
	if len(rows) == 0 {
		return nil
	}

	t := &Table{Header: []string{"Deck", "Status", "Questions", "Topic / Reason"}}
	for _, row := range rows {
		questions := "-"
		if row.Questions > 0 {
			questions = strconv.Itoa(row.Questions)
		}
		t.AddRow(row.Deck, row.Status, questions, row.Detail)
	}

	_, err := fmt.Fprint(w, t.Render())
	return err
}

package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"outlay/internal/model"
)

// RenderTransactions writes the transaction sequence to w as an aligned
// table. Positions listed in matched are highlighted; when matchedOnly is
// set, every other row is omitted. Positions outside the sequence are
// ignored so a stale filter cannot break rendering.
func RenderTransactions(w io.Writer, txns []model.Transaction, matched []int, matchedOnly bool) {
	matchSet := make(map[int]bool, len(matched))
	for _, position := range matched {
		matchSet[position] = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer func() {
		_ = tw.Flush()
	}()

	fmt.Fprintf(tw, " \t%s\t%s\t%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("#"),
		HeaderStyle.Render("Date"),
		HeaderStyle.Render("Category"),
		HeaderStyle.Render("Note"),
		HeaderStyle.Render("Amount"),
		HeaderStyle.Render("ID"))
	fmt.Fprintf(tw, " \t%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 3),
		strings.Repeat("-", 10),
		strings.Repeat("-", 12),
		strings.Repeat("-", 24),
		strings.Repeat("-", 8),
		strings.Repeat("-", 36))

	for i, txn := range txns {
		isMatch := matchSet[i]
		if matchedOnly && !isMatch {
			continue
		}

		marker := " "
		if isMatch {
			marker = MatchStyle.Render(MatchIcon)
		}

		note := txn.Note
		if note == "" {
			note = SubtleStyle.Render("(no note)")
		}

		cells := []string{
			fmt.Sprintf("%d", i),
			txn.Date.Format("2006-01-02"),
			txn.Category,
			note,
			fmt.Sprintf("%.2f", txn.Amount),
			txn.ID,
		}
		if isMatch {
			// Style cell by cell so tabwriter still sees the tabs.
			for c := range cells {
				cells[c] = MatchStyle.Render(cells[c])
			}
		}
		fmt.Fprintf(tw, "%s\t%s\n", marker, strings.Join(cells, "\t"))
	}
}

// RenderSummary writes a one-line count of transactions and, when a filter
// is active, how many of them matched.
func RenderSummary(w io.Writer, total, matched int, filtered bool) {
	if filtered {
		fmt.Fprintln(w, SubtleStyle.Render(fmt.Sprintf("%d transaction(s), %d matched", total, matched)))
		return
	}
	fmt.Fprintln(w, SubtleStyle.Render(fmt.Sprintf("%d transaction(s)", total)))
}

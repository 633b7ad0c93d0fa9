package scorecard

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// extractRows walks every offset in the layout's range below the table of
// `innings` and returns one field per offset, in offset order.
//
// A row whose element is missing entirely is absent, a row that exists but
// lacks any cell is malformed. Neither stops the scan, a hole in the middle of
// a table does not truncate it.
func extractRows(doc *goquery.Document, layout rowLayout, innings int) []Field[[]string] {
	table := inningsRoot(innings).Join(layout.table)

	fields := make([]Field[[]string], 0, layout.last-layout.first+1)
	for offset := layout.first; offset <= layout.last; offset++ {
		row := table.Child("div", offset)
		if len(row.Nodes(doc)) == 0 {
			fields = append(fields, absent[[]string](fmt.Sprintf("no row at %s", row)))
			continue
		}

		cells := make([]string, len(layout.cells))
		missing := -1
		for i, cell := range layout.cells {
			value, ok := row.Join(cell).First(doc)
			if !ok {
				missing = i
				break
			}
			cells[i] = value
		}

		switch {
		case missing == 0:
			fields = append(fields, absent[[]string](fmt.Sprintf("no name at %s", row)))
		case missing > 0:
			fields = append(fields, malformed[[]string](fmt.Sprintf(
				"missing cell %d at %s", missing+1, row,
			)))
		default:
			fields = append(fields, present(cells))
		}
	}
	return fields
}

func battingEntries(rows []Field[[]string]) []BattingEntry {
	entries := []BattingEntry{}
	for _, r := range rows {
		if !r.Ok() {
			continue
		}
		c := r.Value
		entries = append(entries, BattingEntry{
			Name:       c[0],
			Dismissal:  c[1],
			Runs:       c[2],
			Balls:      c[3],
			Fours:      c[4],
			Sixes:      c[5],
			StrikeRate: c[6],
		})
	}
	return entries
}

func bowlingEntries(rows []Field[[]string]) []BowlingEntry {
	entries := []BowlingEntry{}
	for _, r := range rows {
		if !r.Ok() {
			continue
		}
		c := r.Value
		entries = append(entries, BowlingEntry{
			Name:         c[0],
			Overs:        c[1],
			Maidens:      c[2],
			RunsConceded: c[3],
			Wickets:      c[4],
			Economy:      c[5],
		})
	}
	return entries
}

// ExtractBatting returns the batting table of innings `n` (1 or 2).
func ExtractBatting(doc *goquery.Document, n int) []BattingEntry {
	return battingEntries(extractRows(doc, battingLayout, n))
}

// ExtractBowling returns the bowling table of innings `n` (1 or 2).
func ExtractBowling(doc *goquery.Document, n int) []BowlingEntry {
	return bowlingEntries(extractRows(doc, bowlingLayout, n))
}

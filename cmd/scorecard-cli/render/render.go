package render

import (
	"fmt"
	"io"
	"iplscore-backend/internal/matchindex"
	"iplscore-backend/internal/scorecard"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Footer = text.FormatDefault
	t.SetOutputMirror(w)
	return t
}

// TopScorer returns the batter with the most runs, batters whose runs are not
// a number are skipped.
func TopScorer(innings scorecard.Innings) (scorecard.BattingEntry, bool) {
	best := -1
	var top scorecard.BattingEntry
	for _, b := range innings.Batting {
		runs := scorecard.CoerceInt(b.Runs, -1)
		if runs > best {
			best = runs
			top = b
		}
	}
	return top, best >= 0
}

func inningsTitle(n int, innings scorecard.Innings) string {
	if innings.Score.Empty() {
		return fmt.Sprintf("Innings %d", n)
	}
	s := innings.Score
	return fmt.Sprintf("Innings %d: %s %d/%d (%s ov)", n, s.Team, s.Runs, s.Wickets, s.OversText)
}

func Innings(w io.Writer, n int, innings scorecard.Innings) {
	fmt.Fprintln(w, inningsTitle(n, innings))

	batting := NewTable(w)
	batting.AppendHeader(table.Row{"Batter", "Dismissal", "R", "B", "4s", "6s", "SR"})
	for _, b := range innings.Batting {
		batting.AppendRow(table.Row{b.Name, b.Dismissal, b.Runs, b.Balls, b.Fours, b.Sixes, b.StrikeRate})
	}
	batting.Render()

	bowling := NewTable(w)
	bowling.AppendHeader(table.Row{"Bowler", "O", "M", "R", "W", "Econ"})
	for _, b := range innings.Bowling {
		bowling.AppendRow(table.Row{b.Name, b.Overs, b.Maidens, b.RunsConceded, b.Wickets, b.Economy})
	}
	bowling.Render()

	if top, ok := TopScorer(innings); ok {
		fmt.Fprintf(w, "Top scorer: %s %s (%s)\n", top.Name, top.Runs, top.Balls)
	}
}

func Scorecard(w io.Writer, card scorecard.Scorecard) {
	if !card.Toss.Empty() {
		fmt.Fprintf(w, "Toss: %s\n", card.Toss.Update)
	}
	fmt.Fprintln(w)
	Innings(w, 1, card.Innings1)
	fmt.Fprintln(w)
	Innings(w, 2, card.Innings2)
	fmt.Fprintln(w)

	if len(card.PlayingEleven) > 0 {
		teams := make([]string, 0, len(card.PlayingEleven))
		for team := range card.PlayingEleven {
			teams = append(teams, team)
		}
		sort.Strings(teams)

		squads := NewTable(w)
		squads.AppendHeader(table.Row{"Team", "Playing XI"})
		for _, team := range teams {
			squads.AppendRow(table.Row{team, strings.Join(card.PlayingEleven[team], ", ")})
		}
		squads.Render()
	}

	r := card.Result
	fmt.Fprintf(w, "Result: %s (winner: %s, margin: %s)\n", r.Update, r.WinningTeam, r.WinningMargin)
}

func Matches(w io.Writer, season string, matches []matchindex.Match) {
	t := NewTable(w)
	t.SetTitle(season)
	t.AppendHeader(table.Row{"No", "Match Id", "Name", "Venue", "Time", "Result"})
	for _, m := range matches {
		t.AppendRow(table.Row{m.No, m.Id, m.Name, m.Venue, m.Time, m.Result})
	}
	t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d matches", len(matches))})
	t.Render()
}

func SearchResults(w io.Writer, results []matchindex.SearchResult) {
	t := NewTable(w)
	t.AppendHeader(table.Row{"Season", "No", "Match Id", "Name", "Similarity"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Season, r.Match.No, r.Match.Id, r.Match.Name, fmt.Sprintf("%.2f", r.Score)})
	}
	t.Render()
}

func Series(w io.Writer, series matchindex.SeriesTable, changed []string) {
	t := NewTable(w)
	t.AppendHeader(table.Row{"Season", "Series Id", ""})
	for _, season := range series.Seasons() {
		marker := ""
		for _, c := range changed {
			if c == season {
				marker = "updated"
				break
			}
		}
		t.AppendRow(table.Row{season, series[season], marker})
	}
	t.Render()
}

package scorecard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixture renders a page laid out like a cricbuzz scorecard. An empty string
// anywhere renders the element without any text so positions never shift.
type fixture struct {
	result  string
	toss    string
	squads  [2]fixtureSquad
	innings [2]fixtureInnings
}

type fixtureSquad struct {
	team    string
	players []string
}

type fixtureInnings struct {
	team  string
	score string
	// batting rows are name, dismissal, runs, balls, fours, sixes, sr
	batting [][]string
	// bowling rows are name, overs, maidens, runs, wickets, economy
	bowling [][]string
}

func el(b *strings.Builder, tag, text string) {
	b.WriteString("<" + tag + ">" + text + "</" + tag + ">")
}

func cellWithChild(b *strings.Builder, child, text string) {
	b.WriteString("<div>")
	if text != "" {
		el(b, child, text)
	}
	b.WriteString("</div>")
}

func (f fixtureInnings) render(b *strings.Builder, n int) {
	b.WriteString(`<div id="` + inningsId(n) + `">`)

	// batting table
	b.WriteString("<div>")
	b.WriteString("<div>")
	el(b, "span", f.team)
	el(b, "span", f.score)
	b.WriteString("</div>")
	el(b, "div", "Batter R B 4s 6s SR")
	for _, row := range f.batting {
		b.WriteString(`<div class="row">`)
		cellWithChild(b, "a", row[0])
		cellWithChild(b, "span", row[1])
		for _, c := range row[2:] {
			el(b, "div", c)
		}
		b.WriteString("</div>")
	}
	b.WriteString("</div>")

	el(b, "div", "Extras")
	el(b, "div", "Fall of Wickets")

	// bowling table
	b.WriteString("<div>")
	el(b, "div", "Bowler O M R W NB WD ECO")
	for _, row := range f.bowling {
		b.WriteString(`<div class="row">`)
		cellWithChild(b, "a", row[0])
		for _, c := range row[1:5] {
			el(b, "div", c)
		}
		el(b, "div", "0")
		el(b, "div", "1")
		el(b, "div", row[5])
		b.WriteString("</div>")
	}
	b.WriteString("</div>")

	b.WriteString("</div>")
}

func (s fixtureSquad) render(b *strings.Builder) {
	heading := ""
	if s.team != "" {
		heading = s.team + " Squad"
	}
	el(b, "div", heading)

	b.WriteString("<div>")
	el(b, "div", "Playing")
	b.WriteString("<div>")
	for _, p := range s.players {
		el(b, "a", p)
	}
	b.WriteString("</div>")
	b.WriteString("</div>")
}

func (f fixture) html() string {
	b := &strings.Builder{}
	b.WriteString("<html><head><title>scorecard</title></head><body>")

	el(b, "div", f.result)
	el(b, "div", "navigation")
	el(b, "div", "match header")

	b.WriteString("<div>")
	el(b, "div", "commentary")
	b.WriteString("<div>")
	el(b, "div", "Match Info")
	b.WriteString("<div><div>Match</div><div>IPL</div></div>")
	b.WriteString("<div><div>Toss</div>")
	el(b, "div", f.toss)
	b.WriteString("</div>")
	for range 5 {
		el(b, "div", "info")
	}
	f.squads[0].render(b)
	el(b, "div", "bench")
	f.squads[1].render(b)
	b.WriteString("</div>")
	b.WriteString("</div>")

	f.innings[0].render(b, 1)
	f.innings[1].render(b, 2)

	b.WriteString("</body></html>")
	return b.String()
}

func (f fixture) document(t testing.TB) Document {
	doc, err := NewDocument(strings.NewReader(f.html()), "https://www.cricbuzz.com/api/html/cricket-scorecard/1")
	require.NoError(t, err)
	return doc
}

func battingRows(n int) [][]string {
	names := []string{
		"Rohit Sharma", "Ishan Kishan", "Suryakumar Yadav", "Tilak Varma",
		"Hardik Pandya", "Tim David", "Romario Shepherd", "Mohammad Nabi",
		"Piyush Chawla", "Gerald Coetzee", "Jasprit Bumrah",
	}
	rows := make([][]string, 0, n)
	for i := range n {
		rows = append(rows, []string{names[i], "c Dhoni b Pathirana", "21", "14", "2", "1", "150.00"})
	}
	return rows
}

func defaultFixture() fixture {
	return fixture{
		result: "Mumbai Indians won by 7 wickets",
		toss:   "Chennai Super Kings won the toss and opt to bat",
		squads: [2]fixtureSquad{
			{team: "Chennai Super Kings", players: []string{"Ruturaj Gaikwad", "MS Dhoni", " Ravindra Jadeja "}},
			{team: "Mumbai Indians", players: []string{"Rohit Sharma", "Jasprit Bumrah"}},
		},
		innings: [2]fixtureInnings{
			{
				team:  "Chennai Super Kings Innings",
				score: "172-4 (20.0 Ov)",
				batting: [][]string{
					{"Ruturaj Gaikwad", "c Kishan b Bumrah", "69", "40", "5", "5", "172.50"},
					{"MS Dhoni", "not out", "20", "4", "0", "3", "500.00"},
				},
				bowling: [][]string{
					{"Jasprit Bumrah", "4", "0", "27", "2", "6.80"},
				},
			},
			{
				team:  "Mumbai Indians Innings",
				score: "176-3 (18.4 Ov)",
				batting: [][]string{
					{"Rohit Sharma", "not out", "105", "63", "11", "5", "166.67"},
				},
				bowling: [][]string{
					{"Matheesha Pathirana", "4", "0", "28", "4", "7.00"},
					{"Tushar Deshpande", "3.4", "0", "40", "0", "10.91"},
				},
			},
		},
	}
}

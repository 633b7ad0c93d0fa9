package scorecard

import (
	"fmt"
	"iplscore-backend/lib/htmlutil"
)

// every address below is a fixed position in cricbuzz's scorecard markup,
// when the page layout changes these silently stop matching anything.

func inningsId(n int) string {
	return fmt.Sprintf("innings_%d", n)
}

func inningsRoot(n int) htmlutil.Path {
	return htmlutil.Path{RootId: inningsId(n)}
}

var (
	headerTeamPath  = htmlutil.MustParsePath("/div[1]/div[1]/span[1]")
	headerScorePath = htmlutil.MustParsePath("/div[1]/div[1]/span[2]")

	battingTablePath = htmlutil.MustParsePath("/div[1]")
	bowlingTablePath = htmlutil.MustParsePath("/div[4]")

	tossPath   = htmlutil.MustParsePath("/html/body/div[4]/div[2]/div[3]/div[2]/text()")
	resultPath = htmlutil.MustParsePath("/html/body/div[1]/text()")

	squadOneTeamPath    = htmlutil.MustParsePath("/html/body/div[4]/div[2]/div[9]/text()")
	squadOnePlayersPath = htmlutil.MustParsePath("/html/body/div[4]/div[2]/div[10]/div[2]/a/text()")
	squadTwoTeamPath    = htmlutil.MustParsePath("/html/body/div[4]/div[2]/div[12]/text()")
	squadTwoPlayersPath = htmlutil.MustParsePath("/html/body/div[4]/div[2]/div[13]/div[2]/a/text()")
)

// rowLayout describes a table as a range of row offsets below a root and
// the cells that make up a single row, relative to that row.
type rowLayout struct {
	table       htmlutil.Path
	first, last int
	cells       []htmlutil.Path
}

var battingLayout = rowLayout{
	table: battingTablePath,
	first: 3,
	last:  12,
	cells: []htmlutil.Path{
		htmlutil.MustParsePath("/div[1]/a"),    // name
		htmlutil.MustParsePath("/div[2]/span"), // dismissal
		htmlutil.MustParsePath("/div[3]"),      // runs
		htmlutil.MustParsePath("/div[4]"),      // balls
		htmlutil.MustParsePath("/div[5]"),      // fours
		htmlutil.MustParsePath("/div[6]"),      // sixes
		htmlutil.MustParsePath("/div[7]"),      // strike rate
	},
}

var bowlingLayout = rowLayout{
	table: bowlingTablePath,
	first: 2,
	last:  12,
	cells: []htmlutil.Path{
		htmlutil.MustParsePath("/div[1]/a"), // name
		htmlutil.MustParsePath("/div[2]"),   // overs
		htmlutil.MustParsePath("/div[3]"),   // maidens
		htmlutil.MustParsePath("/div[4]"),   // runs
		htmlutil.MustParsePath("/div[5]"),   // wickets
		htmlutil.MustParsePath("/div[8]"),   // economy
	},
}

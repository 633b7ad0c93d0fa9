package scorecard

import (
	"fmt"
	"iplscore-backend/lib/textutil"
	"strconv"
	"strings"
)

func stripInningsWord(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "Innings", ""))
}

// ParseScore parses a header score like "157-6 (18.2 Ov)". Anything that is
// not exactly <runs>-<wickets> (<overs> Ov) yields a malformed field, a score
// is never returned half filled.
func ParseScore(team, scoreText string) Field[InningsScore] {
	team = stripInningsWord(team)
	text := stripInningsWord(scoreText)

	runsText, _ := textutil.Nth(text, "-", 0)
	afterDash, ok := textutil.Nth(text, "-", 1)
	if !ok {
		return malformed[InningsScore](fmt.Sprintf("no '-' in score %q", text))
	}
	runs, err := strconv.Atoi(strings.TrimSpace(runsText))
	if err != nil || runs < 0 {
		return malformed[InningsScore](fmt.Sprintf("invalid runs in score %q", text))
	}
	wickets, err := strconv.Atoi(strings.TrimSpace(textutil.Before(afterDash, "(")))
	if err != nil || wickets < 0 || wickets > 10 {
		return malformed[InningsScore](fmt.Sprintf("invalid wickets in score %q", text))
	}

	inParens, ok := textutil.Nth(text, "(", 1)
	if !ok || !strings.Contains(inParens, ")") {
		return malformed[InningsScore](fmt.Sprintf("no overs in score %q", text))
	}
	overs := textutil.Before(inParens, ")")
	overs = strings.TrimSpace(strings.ReplaceAll(overs, "Ov", ""))

	return present(InningsScore{
		Team:      team,
		ScoreText: text,
		Runs:      runs,
		Wickets:   wickets,
		OversText: overs,
	})
}

// ParseToss parses "<team> won the toss and opt to <action>".
func ParseToss(text string) Field[TossResult] {
	text = strings.TrimSpace(text)
	if !strings.Contains(text, "won") || !strings.Contains(text, "opt to") {
		return malformed[TossResult](fmt.Sprintf("unrecognized toss %q", text))
	}

	team := strings.TrimSpace(textutil.Before(text, "won"))
	choseTo, _ := textutil.Nth(text, "opt to", 1)
	choseTo = strings.TrimSpace(choseTo)
	if team == "" || choseTo == "" {
		return malformed[TossResult](fmt.Sprintf("incomplete toss %q", text))
	}

	return present(TossResult{
		Update:      text,
		WinningTeam: team,
		ChoseTo:     choseTo,
	})
}

// ParseResult parses the match status line, the line is lowercased before
// anything else happens to it.
//
//	"mumbai indians won by 7 wickets" -> winner "mumbai indians", margin "7 wickets"
//	"match abandoned"                 -> winner "Not Completed", margin "NA"
func ParseResult(text string) Field[MatchResult] {
	update := strings.ToLower(strings.TrimSpace(text))
	if !strings.Contains(update, "won") {
		return present(MatchResult{
			WinningTeam:   NotCompleted,
			Update:        update,
			WinningMargin: NotAvailable,
		})
	}

	winner := textutil.Before(update, "won")
	winner = strings.ReplaceAll(winner, "(", "")
	winner = strings.ReplaceAll(winner, ")", "")
	winner = strings.ReplaceAll(winner, "match tied", "")
	winner = strings.TrimSpace(winner)

	margin, ok := textutil.Nth(update, "by", 1)
	if !ok {
		return malformed[MatchResult](fmt.Sprintf("no margin in result %q", update))
	}

	return present(MatchResult{
		WinningTeam:   winner,
		Update:        update,
		WinningMargin: strings.TrimSpace(margin),
	})
}

func parseSquadTeam(text string) string {
	return strings.TrimSpace(strings.ReplaceAll(text, "Squad", ""))
}

// CoerceInt converts a scraped cell to an int, falling back to `def` for
// anything that isn't a plain integer ("", "-", "DNB", ...).
func CoerceInt(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// CoerceFloat is CoerceInt for decimal cells like strike rate or economy.
func CoerceFloat(s string, def float64) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return n
}

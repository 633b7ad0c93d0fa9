package scorecard

import (
	"context"
	"iplscore-backend/lib/telemetry"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = telemetry.Tracer("iplscore.internal.scorecard")

const (
	report_innings_score = "innings-score"
	report_batting_row   = "batting-row"
	report_bowling_row   = "bowling-row"
	report_toss          = "toss"
	report_result        = "result"
	report_playing_xi    = "playing-eleven"
)

// Assembler turns a scorecard document into a Scorecard. It holds no state
// between calls, the same document always produces the same scorecard.
type Assembler struct {
	tel telemetry.API
}

// NewAssembler creates an assembler that reports unreadable sections to
// `tel`, a nil api discards the reports.
func NewAssembler(tel telemetry.API) Assembler {
	if tel == nil {
		tel = telemetry.NoopAPI{}
	}
	return Assembler{tel: telemetry.NewScopedAPI("scorecard", tel)}
}

// Assemble always returns a complete scorecard, every section that could not
// be read is left empty instead.
func (a Assembler) Assemble(ctx context.Context, doc Document) Scorecard {
	_, span := tracer.Start(ctx, "Assemble")
	defer span.End()
	span.SetAttributes(attribute.String("base_url", doc.BaseURL))

	card := Scorecard{
		Innings1:      a.innings(doc.Doc, 1),
		Innings2:      a.innings(doc.Doc, 2),
		Result:        a.result(doc.Doc),
		PlayingEleven: a.playingEleven(doc.Doc),
		Toss:          a.toss(doc.Doc),
	}

	span.SetAttributes(
		attribute.Int("innings1.batting", len(card.Innings1.Batting)),
		attribute.Int("innings2.batting", len(card.Innings2.Batting)),
	)
	return card
}

func (a Assembler) report(id string, status FieldStatus, reason string) {
	switch status {
	case FieldMalformed:
		a.tel.ReportWarning(id, "malformed", reason)
	case FieldAbsent:
		a.tel.ReportWarning(id, "absent", reason)
	}
}

func (a Assembler) innings(doc *goquery.Document, n int) Innings {
	score := a.score(doc, n)

	batting := extractRows(doc, battingLayout, n)
	bowling := extractRows(doc, bowlingLayout, n)
	// rows past the end of a table are expected to be absent, only rows that
	// exist but could not be read are worth reporting
	for _, r := range batting {
		if r.Status == FieldMalformed {
			a.report(report_batting_row, r.Status, r.Reason)
		}
	}
	for _, r := range bowling {
		if r.Status == FieldMalformed {
			a.report(report_bowling_row, r.Status, r.Reason)
		}
	}

	return Innings{
		Batting: battingEntries(batting),
		Bowling: bowlingEntries(bowling),
		Score:   score,
	}
}

func (a Assembler) score(doc *goquery.Document, n int) InningsScore {
	root := inningsRoot(n)
	team, foundTeam := root.Join(headerTeamPath).First(doc)
	scoreText, foundScore := root.Join(headerScorePath).First(doc)
	if !foundTeam || !foundScore {
		a.report(report_innings_score, FieldAbsent, inningsId(n))
		return InningsScore{}
	}

	field := ParseScore(team, scoreText)
	a.report(report_innings_score, field.Status, field.Reason)
	return field.OrEmpty()
}

func (a Assembler) toss(doc *goquery.Document) TossResult {
	text, found := tossPath.First(doc)
	if !found {
		a.report(report_toss, FieldAbsent, tossPath.String())
		return TossResult{}
	}
	field := ParseToss(text)
	a.report(report_toss, field.Status, field.Reason)
	return field.OrEmpty()
}

func (a Assembler) result(doc *goquery.Document) MatchResult {
	text, found := resultPath.First(doc)
	if !found {
		a.report(report_result, FieldAbsent, resultPath.String())
		return UnavailableResult
	}
	field := ParseResult(text)
	if !field.Ok() {
		a.report(report_result, field.Status, field.Reason)
		return UnavailableResult
	}
	return field.Value
}

// a roster block counts as missing when its team heading is missing, a
// heading with no players below it is kept with an empty list.
func (a Assembler) playingEleven(doc *goquery.Document) PlayingEleven {
	teamOne, foundOne := squadOneTeamPath.First(doc)
	teamTwo, foundTwo := squadTwoTeamPath.First(doc)
	if !foundOne || !foundTwo {
		a.report(report_playing_xi, FieldAbsent, "missing squad heading")
		return PlayingEleven{}
	}

	return PlayingEleven{
		parseSquadTeam(teamOne): players(squadOnePlayersPath.Locate(doc)),
		parseSquadTeam(teamTwo): players(squadTwoPlayersPath.Locate(doc)),
	}
}

func players(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}

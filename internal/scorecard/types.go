package scorecard

import (
	"encoding/json"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Document is a parsed scorecard page as handed over by whatever fetched it.
type Document struct {
	Doc      *goquery.Document
	BaseURL  string
	Encoding string
}

// NewDocument parses utf-8 markup read from `r`.
func NewDocument(r io.Reader, baseURL string) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Document{}, err
	}
	return Document{Doc: doc, BaseURL: baseURL, Encoding: "utf-8"}, nil
}

type FieldStatus int

const (
	FieldAbsent FieldStatus = iota
	FieldMalformed
	FieldPresent
)

func (s FieldStatus) String() string {
	switch s {
	case FieldPresent:
		return "present"
	case FieldMalformed:
		return "malformed"
	default:
		return "absent"
	}
}

// Field is the outcome of extracting one derived record. Anything that is not
// present resolves to the zero value of T when it reaches the scorecard.
type Field[T any] struct {
	Value  T
	Status FieldStatus
	Reason string
}

func present[T any](value T) Field[T] {
	return Field[T]{Value: value, Status: FieldPresent}
}

func absent[T any](reason string) Field[T] {
	return Field[T]{Status: FieldAbsent, Reason: reason}
}

func malformed[T any](reason string) Field[T] {
	return Field[T]{Status: FieldMalformed, Reason: reason}
}

func (f Field[T]) Ok() bool {
	return f.Status == FieldPresent
}

// OrEmpty returns the value if it is present, otherwise the zero value.
func (f Field[T]) OrEmpty() T {
	if f.Status != FieldPresent {
		var empty T
		return empty
	}
	return f.Value
}

type InningsScore struct {
	Team      string `json:"team"`
	ScoreText string `json:"score"`
	Runs      int    `json:"runs"`
	Wickets   int    `json:"wickets"`
	OversText string `json:"overs"`
}

// Empty reports whether this is the absent variant, a parsed score always
// carries its source text.
func (s InningsScore) Empty() bool {
	return s.ScoreText == ""
}

func (s InningsScore) MarshalJSON() ([]byte, error) {
	if s.Empty() {
		return []byte("{}"), nil
	}
	type plain InningsScore
	return json.Marshal(plain(s))
}

// BattingEntry fields are kept exactly as scraped, see CoerceInt and
// CoerceFloat for numeric access.
type BattingEntry struct {
	Name       string `json:"name"`
	Dismissal  string `json:"dismissal"`
	Runs       string `json:"runs"`
	Balls      string `json:"balls"`
	Fours      string `json:"fours"`
	Sixes      string `json:"sixes"`
	StrikeRate string `json:"sr"`
}

type BowlingEntry struct {
	Name         string `json:"name"`
	Overs        string `json:"overs"`
	Maidens      string `json:"maidens"`
	RunsConceded string `json:"runs"`
	Wickets      string `json:"wicket"`
	Economy      string `json:"economy"`
}

type TossResult struct {
	Update      string `json:"update"`
	WinningTeam string `json:"winning_team"`
	ChoseTo     string `json:"chose_to"`
}

func (t TossResult) Empty() bool {
	return t == TossResult{}
}

func (t TossResult) MarshalJSON() ([]byte, error) {
	if t.Empty() {
		return []byte("{}"), nil
	}
	type plain TossResult
	return json.Marshal(plain(t))
}

const (
	NotCompleted = "Not Completed"
	NotAvailable = "NA"
)

type MatchResult struct {
	WinningTeam   string `json:"winning_team"`
	Update        string `json:"update"`
	WinningMargin string `json:"winning_margin"`
}

// UnavailableResult is what a missing or unreadable result line resolves to.
var UnavailableResult = MatchResult{
	WinningTeam:   NotAvailable,
	Update:        NotAvailable,
	WinningMargin: NotAvailable,
}

// PlayingEleven maps a team name to its players in listed order.
type PlayingEleven map[string][]string

func (p PlayingEleven) MarshalJSON() ([]byte, error) {
	out := make(map[string][]string, len(p))
	for team, players := range p {
		if players == nil {
			players = []string{}
		}
		out[team] = players
	}
	return json.Marshal(out)
}

type Innings struct {
	Batting []BattingEntry
	Bowling []BowlingEntry
	Score   InningsScore
}

// MarshalJSON writes the innings as
//
//	[{"Batsman": [...]}, {"Bowlers": [...]}, {<score>}]
func (i Innings) MarshalJSON() ([]byte, error) {
	batting := i.Batting
	if batting == nil {
		batting = []BattingEntry{}
	}
	bowling := i.Bowling
	if bowling == nil {
		bowling = []BowlingEntry{}
	}
	return json.Marshal([]any{
		map[string][]BattingEntry{"Batsman": batting},
		map[string][]BowlingEntry{"Bowlers": bowling},
		i.Score,
	})
}

type Scorecard struct {
	Innings1      Innings       `json:"Innings1"`
	Innings2      Innings       `json:"Innings2"`
	Result        MatchResult   `json:"Result"`
	PlayingEleven PlayingEleven `json:"Playing_Eleven"`
	Toss          TossResult    `json:"Toss_Result"`
}

// Innings returns the innings by its 1-based number.
func (s Scorecard) Innings(n int) Innings {
	if n == 2 {
		return s.Innings2
	}
	return s.Innings1
}

package htmlutil

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const pathFixture = `<html><body>
<div>first</div>
<div id="innings_1">
	<div>
		<div><span>Chennai Super Kings Innings</span><span>157-6 (18.2 Ov)</span></div>
		<div>header</div>
		<div><div><a>Ruturaj</a></div><div><span>c Rohit b Bumrah</span></div></div>
	</div>
</div>
<div><a href="/live-cricket-scores/115032/csk-vs-mi-ipl">CSK  vs
 MI</a><a>one</a><a>two</a></div>
</body></html>`

func loadFixture(t testing.TB, contents string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contents))
	require.NoError(t, err)
	return doc
}

func TestParsePath(t *testing.T) {
	cases := []struct {
		expr     string
		expected Path
	}{
		{
			expr: "/html/body/div[4]/div[2]/div[3]/div[2]/text()",
			expected: Path{Steps: []Step{
				{Tag: "html"}, {Tag: "body"},
				{Tag: "div", Index: 4}, {Tag: "div", Index: 2},
				{Tag: "div", Index: 3}, {Tag: "div", Index: 2},
			}},
		},
		{
			expr: `//*[@id="innings_1"]/div[1]/div[3]/div[1]/a/text()`,
			expected: Path{RootId: "innings_1", Steps: []Step{
				{Tag: "div", Index: 1}, {Tag: "div", Index: 3},
				{Tag: "div", Index: 1}, {Tag: "a"},
			}},
		},
		{
			expr:     `//*[@id='innings_2']`,
			expected: Path{RootId: "innings_2"},
		},
	}

	for _, test := range cases {
		path, err := ParsePath(test.expr)
		require.NoError(t, err, test.expr)
		require.Equal(t, test.expected, path, test.expr)
	}
}

func TestParsePathInvalid(t *testing.T) {
	for _, expr := range []string{
		"div[1]",
		"/html/div[0]",
		"/html/div[x]",
		"/html/div[2",
		`//*[@id=""]/div`,
		"/html/*/div",
	} {
		_, err := ParsePath(expr)
		require.Error(t, err, expr)
	}
}

func TestPathStringRoundTrip(t *testing.T) {
	for _, expr := range []string{
		"/html/body/div[1]",
		`//*[@id="innings_1"]/div[4]/div[2]/div[1]/a`,
	} {
		require.Equal(t, expr, MustParsePath(expr).String())
	}
}

func TestLocate(t *testing.T) {
	doc := loadFixture(t, pathFixture)

	cases := []struct {
		expr     string
		expected []string
	}{
		{expr: "/html/body/div[1]", expected: []string{"first"}},
		{expr: `//*[@id="innings_1"]/div[1]/div[1]/span[2]`, expected: []string{"157-6 (18.2 Ov)"}},
		{expr: `//*[@id="innings_1"]/div[1]/div[3]/div[1]/a`, expected: []string{"Ruturaj"}},
		{expr: `//*[@id="innings_1"]/div[1]/div[3]/div[2]/span`, expected: []string{"c Rohit b Bumrah"}},
		{expr: "/html/body/div[3]/a", expected: []string{"CSK  vs\n MI", "one", "two"}},
		{expr: "/html/body/div[3]/a[3]", expected: []string{"two"}},
		// positions past the end and missing roots are just empty
		{expr: `//*[@id="innings_1"]/div[1]/div[9]`, expected: nil},
		{expr: `//*[@id="innings_2"]/div[1]`, expected: nil},
		{expr: "/html/body/div[3]/a[4]", expected: nil},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, MustParsePath(test.expr).Locate(doc), test.expr)
	}
}

func TestLocateOwnTextOnly(t *testing.T) {
	doc := loadFixture(t, `<html><body><div>outer <b>bold</b> tail</div></body></html>`)
	values := MustParsePath("/html/body/div[1]").Locate(doc)
	require.Equal(t, []string{"outer ", " tail"}, values)
}

func TestFirst(t *testing.T) {
	doc := loadFixture(t, pathFixture)

	value, ok := MustParsePath(`//*[@id="innings_1"]/div[1]/div[1]/span[1]`).First(doc)
	require.True(t, ok)
	require.Equal(t, "Chennai Super Kings Innings", value)

	_, ok = MustParsePath(`//*[@id="innings_1"]/div[1]/div[1]/span[3]`).First(doc)
	require.False(t, ok)

	_, ok = MustParsePath("/html/body/div[1]").First(nil)
	require.False(t, ok)
}

func TestChildAndJoin(t *testing.T) {
	root := MustParsePath(`//*[@id="innings_1"]/div[1]`)
	row := root.Child("div", 3)
	cell := row.Join(MustParsePath("/div[1]/a"))

	require.Equal(t, `//*[@id="innings_1"]/div[1]/div[3]/div[1]/a`, cell.String())
	// the receiver is left untouched
	require.Equal(t, `//*[@id="innings_1"]/div[1]`, root.String())
}

func TestGetAnchors(t *testing.T) {
	doc := loadFixture(t, pathFixture)
	anchors := GetAnchors(context.Background(), doc.Find("a[href*='/live-cricket-scores/']"))
	require.Equal(t, []Anchor{{
		Name: "CSK vs MI",
		Href: "/live-cricket-scores/115032/csk-vs-mi-ipl",
	}}, anchors)
}

func TestPathSegments(t *testing.T) {
	require.Equal(t,
		[]string{"cricket-series", "9237", "indian-premier-league-2025"},
		PathSegments("/cricket-series/9237/indian-premier-league-2025"),
	)
	require.Equal(t,
		[]string{"live-cricket-scores", "115032"},
		PathSegments("https://www.cricbuzz.com/live-cricket-scores/115032"),
	)
	require.Nil(t, PathSegments("/"))
}

func TestFirstFrom(t *testing.T) {
	doc := loadFixture(t, pathFixture)
	innings := doc.Find("#innings_1").Nodes[0]

	value, ok := MustParsePath("/div[1]/div[3]/div[1]/a").FirstFrom(innings)
	require.True(t, ok)
	require.Equal(t, "Ruturaj", value)

	_, ok = MustParsePath("/div[2]").FirstFrom(innings)
	require.False(t, ok)
	_, ok = MustParsePath("/div[1]").FirstFrom(nil)
	require.False(t, ok)
}

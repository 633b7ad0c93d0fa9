package cricbuzz

import (
	"context"
	"iplscore-backend/internal/matchindex"
	"iplscore-backend/internal/scorecard"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const liveScoresPage = `<html><body>
<a href="/live-cricket-scores/100001/eng-vs-ind-2nd-test-india-tour-of-england-2025">ENG vs IND</a>
<a href="/cricket-news/1">news</a>
<a href="/live-cricket-scores/115032/csk-vs-mi-3rd-match-indian-premier-league-2025">CSK vs MI</a>
<a href="/live-cricket-scores/115040/rr-vs-kkr-6th-match-ipl-2025">RR vs KKR</a>
</body></html>`

const noLivePage = `<html><body>
<a href="/live-cricket-scores/100001/eng-vs-ind-2nd-test">ENG vs IND</a>
</body></html>`

const seasonPage = `<html><body><div id="series-matches">
<div><div>Mar 22</div><div>Sat</div><div>
	<div><a href="/cricket-scores/114960/kkr-vs-rcb-1st-match-indian-premier-league-2025"><span>Kolkata Knight Riders vs Royal Challengers Bengaluru, 1st Match</span></a><div>Eden Gardens, Kolkata</div><a>Royal Challengers Bengaluru won by 7 wkts</a></div>
	<div><div><span>Starts</span><span>7:30 PM</span></div></div>
</div></div>
<div><div>Mar 23</div><div>Sun</div><div>
	<div><div>Rajiv Gandhi International Stadium, Hyderabad</div></div>
</div></div>
<div><div>Mar 23</div><div>Sun</div><div>
	<div><a href="/live-cricket-scores/114971/srh-vs-rr-2nd-match"><span>Sunrisers Hyderabad vs Rajasthan Royals, 2nd Match</span></a></div>
</div></div>
</div></body></html>`

const seriesPage = `<html><body>
<a href="/cricket-series/9237/indian-premier-league-2025">Indian Premier League 2025</a>
<a href="/cricket-series/9237/indian-premier-league-2025/matches">Matches</a>
<a href="/cricket-series/10500/indian-premier-league-2026">Indian Premier League 2026</a>
<a href="/cricket-series/8393/india-tour-of-england-2025">India tour of England</a>
<a href="/cricket-series/1/indian-premier-league-auction">Auction</a>
</body></html>`

const scorecardPage = `<html><body><div>Mumbai Indians won by 7 wickets</div></body></html>`

func newTestClient(t *testing.T, pages map[string]string) *Client {
	mux := http.NewServeMux()
	for path, body := range pages {
		body := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("content-type", "text/html; charset=utf-8")
			w.Write([]byte(body))
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := NewClient(ClientOptions{BaseUrl: srv.URL})
	require.NoError(t, err)
	return client
}

func TestFetchLiveMatchId(t *testing.T) {
	client := newTestClient(t, map[string]string{"/cricket-match/live-scores": liveScoresPage})

	id, err := client.FetchLiveMatchId(context.Background())
	require.NoError(t, err)
	require.Equal(t, "115032", id)
}

func TestFetchLiveMatchIdNone(t *testing.T) {
	client := newTestClient(t, map[string]string{"/cricket-match/live-scores": noLivePage})

	_, err := client.FetchLiveMatchId(context.Background())
	require.ErrorIs(t, err, ErrNoLiveMatch)
}

func TestFetchSeasonMatches(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"/cricket-series/9237/indian-premier-league-2025/matches": seasonPage,
	})

	matches, err := client.FetchSeasonMatches(context.Background(), "IPL2025", 9237)
	require.NoError(t, err)
	require.Equal(t, []matchindex.Match{
		{
			Venue:  "Eden Gardens, Kolkata",
			Result: "Royal Challengers Bengaluru won by 7 wkts",
			Time:   "7:30 PM",
			Name:   "Kolkata Knight Riders vs Royal Challengers Bengaluru, 1st Match",
			Id:     "114960",
			No:     1,
			Date:   "NA",
		},
		{
			Venue:  "NA",
			Result: "NA",
			Time:   "NA",
			Name:   "Sunrisers Hyderabad vs Rajasthan Royals, 2nd Match",
			Id:     "114971",
			No:     2,
			Date:   "NA",
		},
	}, matches)
}

func TestFetchSeasonMatchesStatus(t *testing.T) {
	client := newTestClient(t, map[string]string{})

	matches, err := client.FetchSeasonMatches(context.Background(), "IPL2025", 9237)
	require.Error(t, err)
	require.Empty(t, matches)
	require.NotNil(t, matches)
}

func TestDiscoverSeries(t *testing.T) {
	client := newTestClient(t, map[string]string{"/cricket-series": seriesPage})

	series, err := client.DiscoverSeries(context.Background())
	require.NoError(t, err)
	require.Equal(t, map[string]int{"IPL2025": 9237, "IPL2026": 10500}, series)
}

func TestFetchScorecard(t *testing.T) {
	client := newTestClient(t, map[string]string{"/api/html/cricket-scorecard/114976": scorecardPage})

	doc, err := client.FetchScorecard(context.Background(), "114976")
	require.NoError(t, err)
	require.Equal(t, "utf-8", doc.Encoding)
	require.Contains(t, doc.BaseURL, "/api/html/cricket-scorecard/114976")

	card := scorecard.NewAssembler(nil).Assemble(context.Background(), doc)
	require.Equal(t, "7 wickets", card.Result.WinningMargin)

	_, err = client.FetchScorecard(context.Background(), "1")
	require.Error(t, err)
}

func TestClientDumps(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/cricket-match/live-scores", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(noLivePage))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	dir := filepath.Join(t.TempDir(), "dumps")
	client, err := NewClient(ClientOptions{BaseUrl: srv.URL, DumpDir: dir})
	require.NoError(t, err)

	_, err = client.FetchLiveMatchId(context.Background())
	require.ErrorIs(t, err, ErrNoLiveMatch)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
}

package cricbuzz

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"iplscore-backend/internal/matchindex"
	"iplscore-backend/internal/scorecard"
	"iplscore-backend/lib/htmlutil"
	"iplscore-backend/lib/restyutil"
	"iplscore-backend/lib/textutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("iplscore.lib.scrapers.cricbuzz")

const DefaultBaseUrl = "https://www.cricbuzz.com"

var ErrNoLiveMatch = errors.New("no live IPL match found")

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	// BaseUrl defaults to DefaultBaseUrl.
	BaseUrl string
	// Timeout defaults to 30 seconds.
	Timeout time.Duration
	// DumpDir enables writing every request/response pair to a directory.
	DumpDir string
	// BypassCloudflare wraps the transport so requests look like they came
	// from a browser.
	BypassCloudflare bool
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(opts.BaseUrl, "/"))
	if opts.BypassCloudflare {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(opts.Timeout)

	var output restyutil.InstrumentOutput
	if opts.DumpDir != "" {
		fs, err := restyutil.NewFilesystemOutput(opts.DumpDir)
		if err != nil {
			return nil, err
		}
		output = fs
	}
	restyutil.InstrumentClient(client, otel.Tracer("iplscore.lib.scrapers.cricbuzz.http"), output)

	return &Client{BaseUrl: baseUrl, Http: client}, nil
}

func (c *Client) getDocument(ctx context.Context, path string) (*goquery.Document, error) {
	res, err := c.Http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("GET %s: unexpected status %d", path, res.StatusCode())
	}
	return goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
}

// FetchScorecard fetches the scorecard page of a match.
func (c *Client) FetchScorecard(ctx context.Context, matchId string) (scorecard.Document, error) {
	ctx, span := tracer.Start(ctx, "FetchScorecard")
	defer span.End()
	span.SetAttributes(attribute.String("match_id", matchId))

	path := "/api/html/cricket-scorecard/" + url.PathEscape(matchId)
	doc, err := c.getDocument(ctx, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch scorecard")
		return scorecard.Document{}, err
	}
	return scorecard.Document{
		Doc:      doc,
		BaseURL:  c.BaseUrl.JoinPath(path).String(),
		Encoding: "utf-8",
	}, nil
}

// FetchLiveMatchId returns the id of the first live match listed that looks
// like an IPL match.
func (c *Client) FetchLiveMatchId(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "FetchLiveMatchId")
	defer span.End()

	doc, err := c.getDocument(ctx, "/cricket-match/live-scores")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch live scores")
		return "", err
	}

	anchors := htmlutil.GetAnchors(ctx, doc.Find(`a[href*="/live-cricket-scores/"]`))
	for _, a := range anchors {
		href := strings.ToLower(a.Href)
		if !textutil.ContainsAny(href, []string{"premier-league", "ipl"}) {
			continue
		}
		segments := htmlutil.PathSegments(a.Href)
		if len(segments) < 2 {
			continue
		}
		span.SetAttributes(attribute.String("match_id", segments[1]))
		return segments[1], nil
	}

	return "", ErrNoLiveMatch
}

var (
	cardVenuePath  = htmlutil.MustParsePath("/div[3]/div[1]/div")
	cardResultPath = htmlutil.MustParsePath("/div[3]/div[1]/a[2]")
	cardTimePath   = htmlutil.MustParsePath("/div[3]/div[2]/div/span[2]")
	cardNamePath   = htmlutil.MustParsePath("/div[3]/div[1]/a/span")
	cardLinkPath   = htmlutil.MustParsePath("/div[3]/div[1]/a")
)

func textOrNA(path htmlutil.Path, card *goquery.Selection) string {
	value, ok := path.FirstFrom(card.Get(0))
	if !ok {
		return matchindex.NotAvailable
	}
	return value
}

// FetchSeasonMatches lists every match of a season, `season` is a season key
// like "IPL2025". Cards without a scorecard link are skipped and match
// numbers are assigned in listed order starting from 1.
func (c *Client) FetchSeasonMatches(ctx context.Context, season string, seriesId int) ([]matchindex.Match, error) {
	ctx, span := tracer.Start(ctx, "FetchSeasonMatches")
	defer span.End()
	span.SetAttributes(
		attribute.String("season", season),
		attribute.Int("series_id", seriesId),
	)

	year := season
	if len(year) > 4 {
		year = year[len(year)-4:]
	}
	path := fmt.Sprintf("/cricket-series/%d/indian-premier-league-%s/matches", seriesId, year)
	doc, err := c.getDocument(ctx, path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch season matches")
		return []matchindex.Match{}, err
	}

	matches := []matchindex.Match{}
	doc.Find("#series-matches > div").Each(func(_ int, card *goquery.Selection) {
		links := cardLinkPath.NodesFrom(card.Get(0))
		if len(links) == 0 {
			return
		}
		href := goquery.NewDocumentFromNode(links[0]).AttrOr("href", "")
		after, ok := textutil.Nth(href, "cricket-scores/", 1)
		if !ok {
			return
		}

		matches = append(matches, matchindex.Match{
			Venue:  textOrNA(cardVenuePath, card),
			Result: textOrNA(cardResultPath, card),
			Time:   textOrNA(cardTimePath, card),
			Name:   textOrNA(cardNamePath, card),
			Id:     textutil.Before(after, "/"),
			No:     len(matches) + 1,
			Date:   matchindex.NotAvailable,
		})
	})

	span.SetAttributes(attribute.Int("matches", len(matches)))
	return matches, nil
}

// DiscoverSeries finds every IPL series listed on the series page, keyed by
// season key.
func (c *Client) DiscoverSeries(ctx context.Context) (map[string]int, error) {
	ctx, span := tracer.Start(ctx, "DiscoverSeries")
	defer span.End()

	doc, err := c.getDocument(ctx, "/cricket-series")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch series list")
		return nil, err
	}

	series := map[string]int{}
	for _, a := range htmlutil.GetAnchors(ctx, doc.Find(`a[href*="/cricket-series/"]`)) {
		if !strings.Contains(a.Href, "indian-premier-league") {
			continue
		}
		segments := htmlutil.PathSegments(a.Href)
		if len(segments) < 3 || len(segments[2]) < 4 {
			continue
		}
		id, err := strconv.Atoi(segments[1])
		if err != nil {
			continue
		}
		slug := segments[2]
		year := slug[len(slug)-4:]
		if _, err := strconv.Atoi(year); err != nil {
			continue
		}
		series[matchindex.SeasonKey(year)] = id
	}

	span.SetAttributes(attribute.Int("series", len(series)))
	return series, nil
}

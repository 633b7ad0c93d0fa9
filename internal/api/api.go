package api

import (
	"context"
	"errors"
	"iplscore-backend/internal/matchindex"
	"iplscore-backend/internal/scorecard"
	"iplscore-backend/lib/scrapers/cricbuzz"
	"iplscore-backend/lib/telemetry"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("iplscore.internal.api")

const (
	msgNoLiveMatch   = "No live IPL match found."
	msgInvalidNo     = "Invalid IPL match number."
	msgMissingMatch  = "Provide match_id or ipl_match_no."
	msgFetchFailed   = "Failed to fetch from cricbuzz."
	msgUnknownSeason = "Invalid season."
)

const usage = `Welcome to the IPL Live Scorecard API!

Usage:
1. /scorecard/live - Get live IPL match scorecard.
2. /scorecard?ipl_match_no=match_no - Get IPL scorecard by match number.
3. /scorecard/match_id - Get scorecard by Cricbuzz match ID.
4. /get_all_matches - List all IPL matches.
5. /get_all_matches_refresh?season=all|year - Refresh match IDs.
`

type ScorecardFetcher interface {
	FetchScorecard(ctx context.Context, matchId string) (scorecard.Document, error)
	FetchLiveMatchId(ctx context.Context) (string, error)
}

type IndexRefresher interface {
	Refresh(ctx context.Context, season string) (matchindex.Index, error)
}

type Options struct {
	Fetcher   ScorecardFetcher
	Store     matchindex.Store
	Refresher IndexRefresher
	Tel       telemetry.API
	// CurrentSeason is the season ipl_match_no is looked up in, ex. "IPL2025".
	CurrentSeason string
	CORSOrigins   []string
	// FetchTimeout bounds every request that reaches cricbuzz for a
	// scorecard, a refresh is not bounded.
	FetchTimeout time.Duration
}

type Server struct {
	fetcher       ScorecardFetcher
	store         matchindex.Store
	refresher     IndexRefresher
	assembler     scorecard.Assembler
	tel           telemetry.API
	currentSeason string
	corsOrigins   []string
	fetchTimeout  time.Duration
}

func NewServer(opts Options) *Server {
	tel := opts.Tel
	if tel == nil {
		tel = telemetry.NoopAPI{}
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	if opts.FetchTimeout == 0 {
		opts.FetchTimeout = 30 * time.Second
	}
	return &Server{
		fetcher:       opts.Fetcher,
		store:         opts.Store,
		refresher:     opts.Refresher,
		assembler:     scorecard.NewAssembler(tel),
		tel:           telemetry.NewScopedAPI("api", tel),
		currentSeason: opts.CurrentSeason,
		corsOrigins:   opts.CORSOrigins,
		fetchTimeout:  opts.FetchTimeout,
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.home)
	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.Timeout(s.fetchTimeout))
		r.Get("/scorecard/live", s.liveScorecard)
		r.Get("/scorecard", s.scorecard)
		r.Get("/scorecard/{match_id}", s.scorecard)
	})
	r.Get("/get_all_matches", s.allMatches)
	r.Get("/get_all_matches_refresh", s.refreshMatches)

	return r
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(usage))
}

func (s *Server) liveScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "liveScorecard")
	defer span.End()

	matchId, err := s.fetcher.FetchLiveMatchId(ctx)
	if errors.Is(err, cricbuzz.ErrNoLiveMatch) || (err == nil && matchId == "") {
		respondMessage(w, http.StatusOK, msgNoLiveMatch)
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch live match id")
		s.tel.ReportWarning("live-match", err.Error())
		respondError(w, http.StatusBadGateway, msgFetchFailed, err)
		return
	}
	s.writeScorecard(ctx, w, matchId)
}

// matchNo returns the ipl_match_no query parameter, anything that is not an
// integer counts as not given.
func matchNo(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("ipl_match_no")
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *Server) scorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "scorecard")
	defer span.End()

	matchId := chi.URLParam(r, "match_id")
	if matchId == "" {
		matchId = r.URL.Query().Get("match_id")
	}

	if no, ok := matchNo(r); ok {
		span.SetAttributes(attribute.Int("ipl_match_no", no))
		idx, err := s.store.Load(ctx)
		if err != nil {
			span.RecordError(err)
			s.tel.ReportBroken("load-index", err.Error())
			respondError(w, http.StatusInternalServerError, "Failed to load match index.", err)
			return
		}
		match, err := matchindex.Lookup(idx, s.currentSeason, no)
		if err != nil {
			respondMessage(w, http.StatusOK, msgInvalidNo)
			return
		}
		matchId = match.Id
	} else if matchId == "" {
		respondMessage(w, http.StatusOK, msgMissingMatch)
		return
	}

	s.writeScorecard(ctx, w, matchId)
}

func (s *Server) writeScorecard(ctx context.Context, w http.ResponseWriter, matchId string) {
	doc, err := s.fetcher.FetchScorecard(ctx, matchId)
	if err != nil {
		s.tel.ReportWarning("fetch-scorecard", matchId, err.Error())
		respondError(w, http.StatusBadGateway, msgFetchFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, s.assembler.Assemble(ctx, doc))
}

func (s *Server) allMatches(w http.ResponseWriter, r *http.Request) {
	idx, err := s.store.Load(r.Context())
	if err != nil {
		s.tel.ReportBroken("load-index", err.Error())
		respondError(w, http.StatusInternalServerError, "Failed to load match index.", err)
		return
	}
	respondJSON(w, http.StatusOK, idx)
}

func (s *Server) refreshMatches(w http.ResponseWriter, r *http.Request) {
	season := r.URL.Query().Get("season")
	idx, err := s.refresher.Refresh(r.Context(), season)
	if errors.Is(err, matchindex.ErrUnknownSeason) {
		respondMessage(w, http.StatusBadRequest, msgUnknownSeason)
		return
	}
	if idx == nil {
		respondError(w, http.StatusBadGateway, "Failed to refresh matches.", err)
		return
	}
	if err != nil {
		// some seasons failed, they are stored as empty
		s.tel.ReportWarning("refresh", err.Error())
	}
	respondJSON(w, http.StatusOK, idx)
}

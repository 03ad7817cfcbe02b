package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/riskibarqy/cricket-team/internal/domain/match"
	"github.com/riskibarqy/cricket-team/internal/domain/scorecard"
	idgen "github.com/riskibarqy/cricket-team/internal/platform/id"
)

const scrapePreviewLength = 5000

// ScorecardScraper fetches a third-party scorecard page through the
// external scraper service.
type ScorecardScraper interface {
	Scrape(ctx context.Context, pageURL string) (ExternalScorecard, error)
}

// ExternalScorecard is the scraper service response.
type ExternalScorecard struct {
	Success     bool
	BattingData []map[string]any
	BowlingData []map[string]any
	MatchInfo   map[string]any
	FullHTML    string
	TableCount  int
	Message     string
	Error       string
}

// ScrapePreview is shown to an admin before anything is saved.
type ScrapePreview struct {
	BattingData []map[string]any `json:"battingData"`
	BowlingData []map[string]any `json:"bowlingData"`
	MatchInfo   map[string]any   `json:"matchInfo"`
	HTML        string           `json:"html"`
	TableCount  int              `json:"tableCount"`
	Message     string           `json:"message,omitempty"`
}

type ScorecardView struct {
	scorecard.Scorecard
	OurInnings      scorecard.Innings `json:"ourInnings"`
	OpponentInnings scorecard.Innings `json:"opponentInnings"`
}

type ScorecardService struct {
	scorecardRepo scorecard.Repository
	matchRepo     match.Repository
	scraper       ScorecardScraper
	idGen         idgen.Generator
	now           func() time.Time
}

// NewScorecardService builds the service. A nil scraper disables scraping.
func NewScorecardService(scorecardRepo scorecard.Repository, matchRepo match.Repository, scraper ScorecardScraper, idGen idgen.Generator) *ScorecardService {
	return &ScorecardService{
		scorecardRepo: scorecardRepo,
		matchRepo:     matchRepo,
		scraper:       scraper,
		idGen:         idGen,
		now:           time.Now,
	}
}

// SaveScorecard upserts the match scorecard and replaces its performances.
func (s *ScorecardService) SaveScorecard(ctx context.Context, matchID string, sheet scorecard.Sheet) (ScorecardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorecardService.SaveScorecard")
	defer span.End()

	if err := sheet.Validate(); err != nil {
		return ScorecardView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	m, err := requireMatch(ctx, s.matchRepo, matchID)
	if err != nil {
		return ScorecardView{}, err
	}

	sc := scorecard.Build(m.ID, sheet)
	if sc.ID, err = s.idGen.NewID(); err != nil {
		return ScorecardView{}, fmt.Errorf("generate scorecard id: %w", err)
	}
	for i := range sc.Batting {
		if sc.Batting[i].ID, err = s.idGen.NewID(); err != nil {
			return ScorecardView{}, fmt.Errorf("generate batting performance id: %w", err)
		}
	}
	for i := range sc.Bowling {
		if sc.Bowling[i].ID, err = s.idGen.NewID(); err != nil {
			return ScorecardView{}, fmt.Errorf("generate bowling performance id: %w", err)
		}
	}
	now := s.now().UTC()
	sc.CreatedAt = now
	sc.UpdatedAt = now

	stored, err := s.scorecardRepo.Save(ctx, sc)
	if err != nil {
		return ScorecardView{}, fmt.Errorf("save scorecard: %w", err)
	}
	return toScorecardView(stored), nil
}

// GetScorecard returns nil when the match has no scorecard yet.
func (s *ScorecardService) GetScorecard(ctx context.Context, matchID string) (*ScorecardView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorecardService.GetScorecard")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	sc, exists, err := s.scorecardRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("get scorecard: %w", err)
	}
	if !exists {
		return nil, nil
	}
	view := toScorecardView(sc)
	return &view, nil
}

// ScrapeScorecard asks the scraper service for a page and returns a preview.
// Nothing is stored.
func (s *ScorecardService) ScrapeScorecard(ctx context.Context, pageURL string) (ScrapePreview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorecardService.ScrapeScorecard")
	defer span.End()

	pageURL = strings.TrimSpace(pageURL)
	parsed, err := url.Parse(pageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return ScrapePreview{}, fmt.Errorf("%w: url must be an absolute http(s) url", ErrInvalidInput)
	}
	if s.scraper == nil {
		return ScrapePreview{}, fmt.Errorf("%w: scorecard scraper is disabled", ErrDependencyUnavailable)
	}

	result, err := s.scraper.Scrape(ctx, pageURL)
	if err != nil {
		return ScrapePreview{}, fmt.Errorf("%w: scrape scorecard: %v", ErrDependencyUnavailable, err)
	}
	if !result.Success {
		reason := strings.TrimSpace(result.Error)
		if reason == "" {
			reason = "scraping failed"
		}
		return ScrapePreview{}, fmt.Errorf("%w: %s", ErrInvalidInput, reason)
	}

	preview := ScrapePreview{
		BattingData: result.BattingData,
		BowlingData: result.BowlingData,
		MatchInfo:   result.MatchInfo,
		HTML:        truncateRunes(result.FullHTML, scrapePreviewLength),
		TableCount:  result.TableCount,
		Message:     result.Message,
	}
	if preview.BattingData == nil {
		preview.BattingData = []map[string]any{}
	}
	if preview.BowlingData == nil {
		preview.BowlingData = []map[string]any{}
	}
	if preview.MatchInfo == nil {
		preview.MatchInfo = map[string]any{}
	}
	return preview, nil
}

func toScorecardView(sc scorecard.Scorecard) ScorecardView {
	ours, theirs := scorecard.Split(sc)
	return ScorecardView{Scorecard: sc, OurInnings: ours, OpponentInnings: theirs}
}

func truncateRunes(v string, n int) string {
	if len(v) <= n {
		return v
	}
	runes := []rune(v)
	if len(runes) <= n {
		return v
	}
	return string(runes[:n])
}

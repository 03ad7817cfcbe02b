package scorecardscraper

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/cricket-team/internal/platform/logging"
	"github.com/riskibarqy/cricket-team/internal/platform/resilience"
	"github.com/riskibarqy/cricket-team/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/singleflight"
)

const (
	scrapePath         = "/scrape"
	maxResponseBytes   = 8 << 20
	defaultTimeout     = 30 * time.Second
	defaultBackoffStep = time.Second
)

var errScraperTransient = crerr.New("scorecard scraper transient failure")

type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Backoff        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client calls the scorecard scraper service.
type Client struct {
	http       *fasthttp.Client
	baseURL    string
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	backoff := cfg.Backoff
	if backoff <= 0 {
		backoff = defaultBackoffStep
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.CircuitBreaker.OnStateChange == nil {
		cfg.CircuitBreaker.OnStateChange = func(from, to resilience.CircuitState) {
			logger.Warn("scorecard scraper circuit changed state", "from", from, "to", to)
		}
	}

	return &Client{
		http: &fasthttp.Client{
			Name:                "cricket-team-scorecard",
			MaxResponseBodySize: maxResponseBytes,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
		},
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		timeout:    timeout,
		maxRetries: cfg.MaxRetries,
		backoff:    backoff,
		logger:     logger,
		breaker:    resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
	}
}

type scrapeRequest struct {
	URL string `json:"url"`
}

type scrapeResponse struct {
	Success     bool             `json:"success"`
	BattingData []map[string]any `json:"batting_data"`
	BowlingData []map[string]any `json:"bowling_data"`
	MatchInfo   map[string]any   `json:"match_info"`
	FullHTML    string           `json:"full_html"`
	TableCount  int              `json:"table_count"`
	Message     string           `json:"message"`
	Error       string           `json:"error"`
}

// Scrape posts the page URL to the scraper. Identical in-flight requests share
// one upstream call.
func (c *Client) Scrape(ctx context.Context, pageURL string) (usecase.ExternalScorecard, error) {
	if c.baseURL == "" {
		return usecase.ExternalScorecard{}, crerr.New("scraper base url is not configured")
	}

	out, err, _ := c.flight.Do(pageURL, func() (any, error) {
		var result usecase.ExternalScorecard
		execErr := c.breaker.Execute(ctx, func(ctx context.Context) error {
			var reqErr error
			result, reqErr = c.scrapeWithRetry(ctx, pageURL)
			return reqErr
		}, isCircuitFailure)
		return result, execErr
	})
	if err != nil {
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "scorecard scraper circuit breaker rejected request", "state", c.breaker.State())
		}
		return usecase.ExternalScorecard{}, err
	}

	result, ok := out.(usecase.ExternalScorecard)
	if !ok {
		return usecase.ExternalScorecard{}, fmt.Errorf("unexpected scrape result type %T", out)
	}
	return result, nil
}

func (c *Client) scrapeWithRetry(ctx context.Context, pageURL string) (usecase.ExternalScorecard, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(scrapeRequest{URL: pageURL}); err != nil {
		return usecase.ExternalScorecard{}, crerr.Wrap(err, "marshal scrape request")
	}
	body := buf.B

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		result, reqErr := c.do(ctx, body)
		if reqErr == nil {
			return result, nil
		}
		lastErr = reqErr
		if !stderrors.Is(reqErr, errScraperTransient) || attempt == c.maxRetries {
			break
		}

		timer := time.NewTimer(time.Duration(attempt+1) * c.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return usecase.ExternalScorecard{}, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "scorecard scrape failed", "page_url", pageURL, "error", lastErr)
	return usecase.ExternalScorecard{}, lastErr
}

func (c *Client) do(ctx context.Context, body []byte) (usecase.ExternalScorecard, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + scrapePath)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBody(body)

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := ctx.Err(); err != nil {
		return usecase.ExternalScorecard{}, err
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return usecase.ExternalScorecard{}, fmt.Errorf("%w: send request: %v", errScraperTransient, err)
	}

	status := resp.StatusCode()
	raw := append([]byte(nil), resp.Body()...)

	var payload scrapeResponse
	decodeErr := sonic.Unmarshal(raw, &payload)

	switch {
	case status >= 200 && status < 300:
		if decodeErr != nil {
			return usecase.ExternalScorecard{}, crerr.Wrap(decodeErr, "decode scrape response")
		}
	case isRetryableStatus(status):
		return usecase.ExternalScorecard{}, fmt.Errorf("%w: scraper status=%d body=%s", errScraperTransient, status, abbreviate(raw))
	default:
		// The scraper reports unreadable pages as 4xx with an error payload.
		if decodeErr != nil || (payload.Error == "" && payload.Message == "") {
			return usecase.ExternalScorecard{}, fmt.Errorf("scraper status=%d body=%s", status, abbreviate(raw))
		}
		payload.Success = false
	}

	return usecase.ExternalScorecard{
		Success:     payload.Success,
		BattingData: payload.BattingData,
		BowlingData: payload.BowlingData,
		MatchInfo:   payload.MatchInfo,
		FullHTML:    payload.FullHTML,
		TableCount:  payload.TableCount,
		Message:     payload.Message,
		Error:       payload.Error,
	}, nil
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= 500
}

func isCircuitFailure(err error) bool {
	return err != nil && (stderrors.Is(err, errScraperTransient) || stderrors.Is(err, context.DeadlineExceeded))
}

func abbreviate(raw []byte) string {
	const limit = 256
	text := strings.TrimSpace(string(raw))
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}

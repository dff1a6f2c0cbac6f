package quote

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/sbdj91/nsewatch/internal/model"
)

// Markup selectors on the quote page. The price is looked up with the
// specific class pair first, then the bare class as a more permissive
// fallback.
const (
	nameSelector          = "div.zzDege"
	priceSelector         = "div.YMlKec.fxKbKc"
	priceFallbackSelector = "div.YMlKec"
)

// Client fetches quotes for one exchange from the quote provider.
type Client struct {
	baseURL    string
	exchange   string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a quote client for the given provider base URL and
// exchange suffix (e.g., "NSE").
func NewClient(baseURL, exchange string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		exchange: exchange,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// Fetch retrieves the current quote for one ticker. It always returns a
// result: any failure is downgraded to a FetchFailed result with sentinel
// values and logged, never surfaced as an error.
func (c *Client) Fetch(ctx context.Context, ticker string) model.QuoteResult {
	result := model.QuoteResult{
		Ticker:      ticker,
		CompanyName: model.Unavailable,
		Status:      model.FetchFailed,
		FetchedAt:   time.Now(),
	}

	name, price, hasPrice, err := c.fetch(ctx, ticker)
	if err != nil {
		c.logger.Warn("quote fetch failed",
			"ticker", ticker,
			"err", err,
		)
		return result
	}

	if name != "" {
		result.CompanyName = name
	}
	result.Price = price
	result.HasPrice = hasPrice

	if name != "" && hasPrice {
		result.Status = model.FetchOK
	} else {
		c.logger.Warn("quote page missing markup",
			"ticker", ticker,
			"has_name", name != "",
			"has_price", hasPrice,
		)
	}

	return result
}

// QuoteURL returns the page URL fetched for a ticker.
func (c *Client) QuoteURL(ticker string) string {
	return fmt.Sprintf("%s/%s:%s?hl=en&gl=in", c.baseURL, ticker, c.exchange)
}

// fetch performs the request and parses the document. A missing name
// comes back as "", a missing or unparseable price as hasPrice=false;
// only transport and status problems are reported as errors.
func (c *Client) fetch(ctx context.Context, ticker string) (name string, price float64, hasPrice bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.QuoteURL(ticker), nil)
	if err != nil {
		return "", 0, false, fmt.Errorf("create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, false, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, false, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", 0, false, fmt.Errorf("parse html: %w", err)
	}

	name = strings.TrimSpace(doc.Find(nameSelector).First().Text())

	priceNode := doc.Find(priceSelector).First()
	if priceNode.Length() == 0 {
		priceNode = doc.Find(priceFallbackSelector).First()
	}
	if priceNode.Length() > 0 {
		raw := strings.TrimSpace(priceNode.Text())
		if v, perr := parsePrice(raw); perr == nil {
			price = v
			hasPrice = true
		} else {
			c.logger.Warn("unparseable price text",
				"ticker", ticker,
				"text", raw,
			)
		}
	}

	return name, price, hasPrice, nil
}

// parsePrice strips the currency symbol and thousands separators from the
// price element's text and parses the remainder as a decimal.
func parsePrice(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimLeftFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '-'
	})
	return strconv.ParseFloat(s, 64)
}

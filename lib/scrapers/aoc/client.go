// client.go contains the authenticated http client for the puzzle site, it only
// knows how to fetch pages, deciding what a page means is left to the caller.

package aoc

import (
	"aocbuilder/internal/assert"
	"aocbuilder/lib/restyutil"
	"aocbuilder/lib/telemetry"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseUrl = "https://adventofcode.com"
	// SessionCookie is the cookie the site reads the credential from.
	SessionCookie = "session"
	// FirstYear is the first year the event ran.
	FirstYear = 2015
	// LastDay is the number of puzzles per year.
	LastDay = 25

	defaultUserAgent = "aocbuilder (+https://github.com/aocbuilder/aocbuilder)"
)

const (
	report_client_fetch       = "client.fetch"
	report_client_unavailable = "client.unavailable"
)

var tracer = otel.Tracer("aocbuilder/scrapers/aoc")

var (
	ErrNoSession        = errors.New("aoc: an authentication token is required")
	ErrInputUnavailable = errors.New("aoc: puzzle input unavailable")
)

type ClientOptions struct {
	BaseUrl string
	Session string
	// RequestsPerSecond <= 0 disables client side throttling.
	RequestsPerSecond float64
	// UserAgent is appended to the default user agent, the site asks that
	// automated tools identify their maintainer.
	UserAgent string
	Timeout   time.Duration
	// Dump receives every request/response pair when set.
	Dump restyutil.InstrumentOutput
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client

	tel telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) (*Client, error) {
	assert.NotNil(tel)
	if opts.Session == "" {
		return nil, ErrNoSession
	}

	tel = telemetry.NewScopedAPI("aoc_scraper", tel)

	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	opts.BaseUrl = strings.TrimSuffix(opts.BaseUrl, "/")
	parsedBaseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = time.Second * 30
	}

	userAgent := defaultUserAgent
	if opts.UserAgent != "" {
		userAgent = fmt.Sprintf("%s %s", defaultUserAgent, opts.UserAgent)
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseUrl)
	httpClient.SetCookie(&http.Cookie{
		Name:  SessionCookie,
		Value: opts.Session,
	})
	httpClient.SetHeader("user-agent", userAgent)
	httpClient.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(parsedBaseUrl.Hostname()))
	httpClient.SetTimeout(opts.Timeout)

	if opts.RequestsPerSecond > 0 {
		rateLimiter := rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
		httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return rateLimiter.Wait(req.Context())
		})
	}

	telemetry.InstrumentResty(httpClient, tel)
	if opts.Dump != nil {
		restyutil.InstrumentClient(httpClient, opts.Dump)
	}

	return &Client{
		BaseUrl: parsedBaseUrl,
		Http:    httpClient,
		tel:     tel,
	}, nil
}

// PageUrl is the puzzle page of a given day.
func (c *Client) PageUrl(year, day int) string {
	return fmt.Sprintf("%s/%d/day/%d", c.BaseUrl.String(), year, day)
}

// InputUrl is the puzzle input that sits next to a puzzle page.
func InputUrl(pageUrl string) string {
	return pageUrl + "/input"
}

// Fetch issues a single GET. ok is false when the server answered with anything
// other than 200, which usually means the puzzle has not unlocked yet. err is
// only set when no response could be obtained at all.
func (c *Client) Fetch(ctx context.Context, link string) (body string, ok bool, err error) {
	ctx, span := tracer.Start(ctx, "client:Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", link))

	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return "", false, fmt.Errorf("fetch %s: %w", link, err)
	}
	span.SetAttributes(attribute.Int("status", res.StatusCode()))

	if res.StatusCode() != http.StatusOK {
		c.tel.ReportDebug(report_client_unavailable, link, res.Status())
		return "", false, nil
	}

	c.tel.ReportDebug(report_client_fetch, link, len(res.Body()))
	// res.String() trims whitespace, inputs are written verbatim
	return string(res.Body()), true, nil
}

package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/shhac/burrow/internal/domain"
)

const (
	// DefaultMaxRedirects is the maximum number of redirects to follow
	DefaultMaxRedirects = 10
	// DefaultUserAgent is sent unless the draft carries its own User-Agent row
	DefaultUserAgent = "burrow"
)

// Request is the outbound call derived from a draft. Params and Headers
// already exclude rows with empty keys.
type Request struct {
	Method  string
	URL     string
	Params  map[string]string
	Headers map[string]string
	Body    []byte // compact JSON; nil sends no body
}

// Sender issues requests through resty and turns every outcome into a
// snapshot. A zero timeout means the call is never cut short.
type Sender struct {
	rc     *resty.Client
	logger *slog.Logger

	timeout        time.Duration
	followRedirect bool
	maxRedirects   int
	insecure       bool
	rootCAs        *x509.CertPool
	clientCerts    []tls.Certificate
	proxyURL       string
	userAgent      string
	transport      http.RoundTripper
}

type Option func(*Sender)

// New builds a Sender with the timing interceptors installed.
func New(logger *slog.Logger, opts ...Option) *Sender {
	s := &Sender{
		logger:         logger,
		followRedirect: true,
		maxRedirects:   DefaultMaxRedirects,
		userAgent:      DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(s)
	}

	rc := resty.New().
		SetLogger(restyLogger{logger: logger}).
		SetTimeout(s.timeout).
		SetRedirectPolicy(resty.RedirectPolicyFunc(s.checkRedirect))

	if s.transport != nil {
		rc.SetTransport(s.transport)
	}
	if s.insecure || s.rootCAs != nil || len(s.clientCerts) > 0 {
		rc.SetTLSClientConfig(&tls.Config{
			InsecureSkipVerify: s.insecure,
			RootCAs:            s.rootCAs,
			Certificates:       s.clientCerts,
		})
	}
	if s.proxyURL != "" {
		rc.SetProxy(s.proxyURL)
	}
	if s.userAgent != "" {
		rc.SetHeader("User-Agent", s.userAgent)
	}

	rc.OnBeforeRequest(stampStart)
	rc.OnAfterResponse(stampEnd)
	rc.OnError(stampError)

	s.rc = rc
	return s
}

// checkRedirect hands the 3xx response back instead of failing when
// following is off or the limit is reached.
func (s *Sender) checkRedirect(_ *http.Request, via []*http.Request) error {
	if !s.followRedirect || len(via) >= s.maxRedirects {
		return http.ErrUseLastResponse
	}
	return nil
}

func WithTimeout(d time.Duration) Option {
	return func(s *Sender) {
		s.timeout = d
	}
}

func WithFollowRedirects(follow bool) Option {
	return func(s *Sender) {
		s.followRedirect = follow
	}
}

func WithMaxRedirects(max int) Option {
	return func(s *Sender) {
		s.maxRedirects = max
	}
}

// WithInsecureSkipVerify disables TLS certificate verification
func WithInsecureSkipVerify(skip bool) Option {
	return func(s *Sender) {
		s.insecure = skip
	}
}

// WithRootCAs replaces the pool used to verify server certificates
func WithRootCAs(pool *x509.CertPool) Option {
	return func(s *Sender) {
		s.rootCAs = pool
	}
}

// WithClientCertificates presents the given certificates for mutual TLS
func WithClientCertificates(certs ...tls.Certificate) Option {
	return func(s *Sender) {
		s.clientCerts = append(s.clientCerts, certs...)
	}
}

// WithProxy routes all requests through the given proxy URL
func WithProxy(proxyURL string) Option {
	return func(s *Sender) {
		s.proxyURL = proxyURL
	}
}

func WithUserAgent(ua string) Option {
	return func(s *Sender) {
		s.userAgent = ua
	}
}

// WithTransport replaces the underlying round tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(s *Sender) {
		s.transport = rt
	}
}

// Send performs exactly one HTTP exchange. Transport failures are returned
// as snapshots with Status 0, never as errors.
func (s *Sender) Send(ctx context.Context, req Request) *domain.Snapshot {
	ctx, t := withTiming(ctx)

	r := s.rc.R().
		SetContext(ctx).
		SetQueryParams(req.Params).
		SetHeaders(req.Headers)

	if req.Body != nil {
		if !hasHeader(req.Headers, "Content-Type") {
			r.SetHeader("Content-Type", "application/json")
		}
		r.SetBody(req.Body)
	}

	s.logger.Debug("sending request",
		slog.String("method", req.Method),
		slog.String("url", req.URL),
		slog.Int("params", len(req.Params)),
		slog.Int("headers", len(req.Headers)),
		slog.Int("body_bytes", len(req.Body)),
	)

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		s.logger.Warn("request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL),
			slog.Duration("elapsed", t.elapsed),
			slog.Any("error", err),
		)
		return failedSnapshot(req, err, t.elapsed)
	}

	snap := responseSnapshot(req, resp, t.elapsed)
	s.logger.Info("request completed",
		slog.String("method", req.Method),
		slog.String("url", snap.URL),
		slog.Int("status", snap.Status),
		slog.Duration("elapsed", snap.Elapsed),
		slog.Int("size", snap.Size),
	)
	return snap
}

func hasHeader(headers map[string]string, name string) bool {
	for k := range headers {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}

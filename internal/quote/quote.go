package quote

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"stocktracker/internal/alphavantage"
	"stocktracker/internal/symbol"
)

// DefaultTimeout bounds a single upstream call.
const DefaultTimeout = 10 * time.Second

// Source fetches and classifies an intraday payload for a symbol.
//
//go:generate mockgen -package=quote_test -destination=mock_source_test.go -source=quote.go Source
type Source interface {
	Intraday(ctx context.Context, apiKey, symbol string) (alphavantage.Response, error)
}

// Recorder observes upstream calls. Outcome is the error code, or "OK".
type Recorder interface {
	ObserveUpstream(outcome string, elapsed time.Duration)
}

// Service turns raw ticker input into a Result.
type Service struct {
	source   Source
	apiKey   string
	timeout  time.Duration
	logger   *slog.Logger
	recorder Recorder
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout overrides the upstream call timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets the logger used for upstream failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder sets the upstream call observer.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// NewService creates a Service backed by source.
func NewService(source Source, apiKey string, opts ...Option) *Service {
	s := &Service{
		source:  source,
		apiKey:  apiKey,
		timeout: DefaultTimeout,
		logger:  slog.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch validates raw and returns the latest quote for it. Every failure is
// returned as an *Error.
func (s *Service) Fetch(ctx context.Context, raw string) (*Result, error) {
	if strings.TrimSpace(s.apiKey) == "" {
		return nil, errAPIKeyMissing()
	}

	sym, err := symbol.Normalize(raw)
	switch {
	case errors.Is(err, symbol.ErrRequired):
		return nil, errSymbolRequired()
	case errors.Is(err, symbol.ErrInvalidFormat):
		return nil, errInvalidSymbolFormat(sym)
	case err != nil:
		return nil, ErrInternal(err)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := s.now()
	res, err := s.source.Intraday(callCtx, s.apiKey, sym)
	if err != nil {
		qerr := classifyTransport(callCtx, err)
		s.observe(string(qerr.Code), start)
		s.logger.WarnContext(ctx, "upstream request failed",
			slog.String("symbol", sym),
			slog.String("code", string(qerr.Code)),
			slog.Any("error", err),
		)
		return nil, qerr
	}

	result, err := s.resolve(sym, res)
	if err != nil {
		var qerr *Error
		if errors.As(err, &qerr) {
			s.observe(string(qerr.Code), start)
			if qerr.Code == CodeInternalError {
				s.logger.ErrorContext(ctx, "translating quote", slog.String("symbol", sym), slog.Any("error", qerr.Err))
			}
		}
		return nil, err
	}
	s.observe("OK", start)
	return result, nil
}

func (s *Service) resolve(sym string, res alphavantage.Response) (*Result, error) {
	switch r := res.(type) {
	case *alphavantage.RateLimited:
		return nil, errRateLimitExceeded(r.Message)
	case *alphavantage.Informational:
		return nil, errAPIInformation(r.Message)
	case *alphavantage.NotFound:
		return nil, errSymbolNotFound(sym, r.Message)
	case *alphavantage.QuotaNote:
		return nil, errRateLimitNote(r.Message)
	case *alphavantage.MissingMetadata:
		return nil, errInvalidAPIResponse()
	case *alphavantage.MissingSeries:
		return nil, errNoTimeSeriesData(r.Keys)
	case *alphavantage.Success:
		result, err := Translate(sym, r)
		if err != nil {
			return nil, ErrInternal(err)
		}
		return result, nil
	default:
		return nil, ErrInternal(errors.New("quote: unknown response variant"))
	}
}

func (s *Service) observe(outcome string, start time.Time) {
	if s.recorder == nil {
		return
	}
	s.recorder.ObserveUpstream(outcome, s.now().Sub(start))
}

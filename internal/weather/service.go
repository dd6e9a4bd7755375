// Package weather turns NWS API responses into the text returned by the
// get_alerts and get_forecast tools.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fastertools/weather-mcp/internal/nws"
)

// Fixed user-facing messages. Upstream failures are never surfaced in any other form.
const (
	NoAlertsMessage        = "No active alerts or unable to fetch alerts."
	PointFailureMessage    = "Unable to fetch forecast data for this location."
	ForecastFailureMessage = "Unable to fetch detailed forecast."
)

// MaxForecastPeriods is the number of leading forecast periods that are read.
const MaxForecastPeriods = 5

// Fetcher retrieves a JSON document and decodes it into v.
type Fetcher interface {
	Get(ctx context.Context, url string, v interface{}) error
}

// Service implements the alerts and forecast lookups.
type Service struct {
	fetcher Fetcher
	baseURL string
	log     logrus.FieldLogger
}

// NewService creates a Service that resolves resources relative to baseURL.
func NewService(fetcher Fetcher, baseURL string, log logrus.FieldLogger) *Service {
	if baseURL == "" {
		baseURL = nws.DefaultBaseURL
	}
	if log == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		log = logger
	}
	return &Service{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// AlertsURL returns the active-alerts URL for a region code.
func (s *Service) AlertsURL(state string) string {
	return fmt.Sprintf("%s/alerts/active/area/%s", s.baseURL, strings.ToUpper(strings.TrimSpace(state)))
}

// PointURL returns the point-resolution URL for a coordinate pair.
func (s *Service) PointURL(latitude, longitude float64) string {
	return fmt.Sprintf("%s/points/%s,%s", s.baseURL, formatCoordinate(latitude), formatCoordinate(longitude))
}

// Alerts returns the formatted active alerts for a two-letter region code.
func (s *Service) Alerts(ctx context.Context, state string) string {
	url := s.AlertsURL(state)

	var alerts nws.AlertCollection
	if err := s.fetcher.Get(ctx, url, &alerts); err != nil {
		s.logFetchFailure("alerts", err)
		return NoAlertsMessage
	}
	if len(alerts.Features) == 0 {
		s.log.WithField("url", url).Debug("no active alerts")
		return NoAlertsMessage
	}

	blocks := make([]string, 0, len(alerts.Features))
	for _, feature := range alerts.Features {
		blocks = append(blocks, formatAlert(feature.Properties))
	}
	return strings.Join(blocks, blockSeparator)
}

// Forecast returns the next forecast periods for a coordinate pair.
func (s *Service) Forecast(ctx context.Context, latitude, longitude float64) string {
	var point nws.Point
	if err := s.fetcher.Get(ctx, s.PointURL(latitude, longitude), &point); err != nil {
		s.logFetchFailure("points", err)
		return PointFailureMessage
	}
	forecastURL := point.Properties.Forecast
	if forecastURL == "" {
		s.log.WithField("url", s.PointURL(latitude, longitude)).Warn("point has no forecast url")
		return PointFailureMessage
	}

	var forecast nws.Forecast
	if err := s.fetcher.Get(ctx, forecastURL, &forecast); err != nil {
		s.logFetchFailure("forecast", err)
		return ForecastFailureMessage
	}
	periods := forecast.Properties.Periods
	if periods == nil {
		s.log.WithField("url", forecastURL).Warn("forecast has no periods")
		return ForecastFailureMessage
	}
	if len(periods) > MaxForecastPeriods {
		periods = periods[:MaxForecastPeriods]
	}

	blocks := make([]string, 0, len(periods))
	for i, raw := range periods {
		var period nws.ForecastPeriod
		if err := json.Unmarshal(raw, &period); err != nil {
			s.log.WithFields(logrus.Fields{"index": i, "error": err}).Warn("skipping undecodable forecast period")
			continue
		}
		if missing := period.Missing(); len(missing) > 0 {
			s.log.WithFields(logrus.Fields{"index": i, "missing": missing}).Warn("skipping incomplete forecast period")
			continue
		}
		blocks = append(blocks, formatPeriod(period))
	}
	return strings.Join(blocks, blockSeparator)
}

func (s *Service) logFetchFailure(step string, err error) {
	fields := logrus.Fields{"step": step, "error": err}
	var fe *nws.FetchError
	if errors.As(err, &fe) {
		fields["url"] = fe.URL
		fields["kind"] = fe.Kind.String()
		if fe.StatusCode != 0 {
			fields["status"] = fe.StatusCode
		}
	}
	s.log.WithFields(fields).Warn("nws request failed")
}

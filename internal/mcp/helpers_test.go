package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fastertools/weather-mcp/internal/nws"
	"github.com/fastertools/weather-mcp/internal/weather"
)

const alertsBody = `{"features":[{"properties":{"event":"Winter Storm Warning","areaDesc":"Sierra","severity":"Severe","description":"Heavy snow.","instruction":"Avoid travel."}}]}`

const forecastBody = `{"properties":{"periods":[` +
	`{"name":"Tonight","temperature":28,"temperatureUnit":"F","windSpeed":"10 mph","windDirection":"SW","detailedForecast":"Snow likely."}` +
	`]}}`

// newFakeNWS starts a fake NWS API answering for CA alerts and one point
func newFakeNWS(t *testing.T) *httptest.Server {
	t.Helper()

	var server *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/alerts/active/area/CA", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(alertsBody))
	})
	mux.HandleFunc("/points/38.9,-120.0", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"properties":{"forecast":"` + server.URL + `/gridpoints/REV/30,80/forecast"}}`))
	})
	mux.HandleFunc("/gridpoints/REV/30,80/forecast", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(forecastBody))
	})
	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestService(t *testing.T) *weather.Service {
	t.Helper()

	upstream := newFakeNWS(t)
	client := nws.NewClient(nws.Options{})
	t.Cleanup(client.Close)
	return weather.NewService(client, upstream.URL, nil)
}

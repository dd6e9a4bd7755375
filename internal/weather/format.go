package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fastertools/weather-mcp/internal/nws"
)

const blockSeparator = "\n---\n"

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

// formatAlert renders one alert block, including its trailing newline.
func formatAlert(p nws.AlertProperties) string {
	return fmt.Sprintf(
		"Event: %s\n"+
			"Area: %s\n"+
			"Severity: %s\n"+
			"Description: %s\n"+
			"Instructions: %s\n",
		valueOr(p.Event, "Unknown"),
		valueOr(p.AreaDesc, "Unknown"),
		valueOr(p.Severity, "Unknown"),
		valueOr(p.Description, "No description available"),
		valueOr(p.Instruction, "No specific instructions provided"),
	)
}

// formatPeriod renders one forecast block. The period must have no missing fields.
func formatPeriod(p nws.ForecastPeriod) string {
	return fmt.Sprintf(
		"%s:\n"+
			"Temperature: %s°%s\n"+
			"Wind: %s %s\n"+
			"Forecast: %s\n",
		*p.Name,
		p.Temperature.String(), *p.TemperatureUnit,
		*p.WindSpeed, *p.WindDirection,
		*p.DetailedForecast,
	)
}

// formatCoordinate renders a coordinate in shortest round-trip form with at
// least one fractional digit, e.g. 40 -> "40.0".
func formatCoordinate(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

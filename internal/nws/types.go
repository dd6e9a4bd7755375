package nws

import "encoding/json"

// AlertCollection is the body of GET /alerts/active/area/{area}.
type AlertCollection struct {
	Features []AlertFeature `json:"features"`
}

// AlertFeature is a single GeoJSON feature of an alert collection.
type AlertFeature struct {
	Properties AlertProperties `json:"properties"`
}

// AlertProperties holds the alert fields rendered by the alerts tool.
// Every field is optional; nil means the key was absent or null.
type AlertProperties struct {
	Event       *string `json:"event"`
	AreaDesc    *string `json:"areaDesc"`
	Severity    *string `json:"severity"`
	Description *string `json:"description"`
	Instruction *string `json:"instruction"`
}

// Point is the body of GET /points/{lat},{lon}.
type Point struct {
	Properties struct {
		// Forecast is the absolute URL of the gridpoint forecast resource.
		Forecast string `json:"forecast"`
	} `json:"properties"`
}

// Forecast is the body of a gridpoint forecast resource. Periods are kept raw
// so that one malformed period does not invalidate the whole response.
type Forecast struct {
	Properties struct {
		Periods []json.RawMessage `json:"periods"`
	} `json:"properties"`
}

// ForecastPeriod is one time segment of a forecast.
type ForecastPeriod struct {
	Name             *string      `json:"name"`
	Temperature      *json.Number `json:"temperature"`
	TemperatureUnit  *string      `json:"temperatureUnit"`
	WindSpeed        *string      `json:"windSpeed"`
	WindDirection    *string      `json:"windDirection"`
	DetailedForecast *string      `json:"detailedForecast"`
}

// Missing returns the JSON names of required fields that are absent or null.
func (p ForecastPeriod) Missing() []string {
	var missing []string
	if p.Name == nil {
		missing = append(missing, "name")
	}
	if p.Temperature == nil {
		missing = append(missing, "temperature")
	}
	if p.TemperatureUnit == nil {
		missing = append(missing, "temperatureUnit")
	}
	if p.WindSpeed == nil {
		missing = append(missing, "windSpeed")
	}
	if p.WindDirection == nil {
		missing = append(missing, "windDirection")
	}
	if p.DetailedForecast == nil {
		missing = append(missing, "detailedForecast")
	}
	return missing
}

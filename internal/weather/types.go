package weather

import (
	"math"
	"time"
)

// Condition is one entry of the API's weather list.
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Readings are the main measurements.
type Readings struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	TempMin   float64 `json:"temp_min"`
	TempMax   float64 `json:"temp_max"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
}

// Wind is the wind speed in m/s and direction in degrees.
type Wind struct {
	Speed float64 `json:"speed"`
	Deg   int     `json:"deg"`
}

// Current is the /weather response.
type Current struct {
	Name       string      `json:"name"`
	Weather    []Condition `json:"weather"`
	Main       Readings    `json:"main"`
	Wind       Wind        `json:"wind"`
	Visibility int         `json:"visibility"` // Meters
	Sys        struct {
		Country string `json:"country"`
	} `json:"sys"`
	Timezone int `json:"timezone"` // Seconds east of UTC
}

// Condition returns the primary condition, or a zero value.
func (c Current) Condition() Condition {
	if len(c.Weather) == 0 {
		return Condition{}
	}
	return c.Weather[0]
}

// Location returns "City, CC".
func (c Current) Location() string {
	if c.Sys.Country == "" {
		return c.Name
	}
	return c.Name + ", " + c.Sys.Country
}

// ForecastItem is one 3-hour step.
type ForecastItem struct {
	DT      int64       `json:"dt"`
	Main    Readings    `json:"main"`
	Weather []Condition `json:"weather"`
}

// Forecast is the /forecast response.
type Forecast struct {
	List []ForecastItem `json:"list"`
	City struct {
		Name     string `json:"name"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}

// LocalTime returns a step time in the city's time zone.
func (f Forecast) LocalTime(item ForecastItem) time.Time {
	return time.Unix(item.DT, 0).In(f.zone())
}

func (f Forecast) zone() *time.Location {
	return time.FixedZone("city", f.City.Timezone)
}

// Report is the current conditions with their forecast.
type Report struct {
	Current  Current
	Forecast Forecast
}

// Day summarizes the forecast steps of one calendar day.
type Day struct {
	Date        time.Time
	High, Low   int
	Description string
}

// Daily groups forecast steps by the city's local date, keeping the first
// condition of each day and the rounded extremes of its temperatures. At
// most limit days are returned when limit is positive.
func (f Forecast) Daily(limit int) []Day {
	loc := f.zone()

	var days []Day
	var highs, lows []float64
	for _, item := range f.List {
		t := f.LocalTime(item)
		date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)

		if n := len(days); n == 0 || !days[n-1].Date.Equal(date) {
			if limit > 0 && n == limit {
				break
			}
			d := Day{Date: date}
			if len(item.Weather) > 0 {
				d.Description = item.Weather[0].Description
			}
			days = append(days, d)
			highs = append(highs, item.Main.Temp)
			lows = append(lows, item.Main.Temp)
		}

		i := len(days) - 1
		highs[i] = math.Max(highs[i], item.Main.Temp)
		lows[i] = math.Min(lows[i], item.Main.Temp)
	}

	for i := range days {
		days[i].High = int(math.Round(highs[i]))
		days[i].Low = int(math.Round(lows[i]))
	}
	return days
}

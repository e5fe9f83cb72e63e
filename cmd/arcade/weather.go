package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-arcade/internal/weather"
)

var (
	flagAPIKey  string
	flagTimeout time.Duration
	flagLang    string
)

var weatherCmd = &cobra.Command{
	Use:   "weather <city>",
	Short: "Show current weather and forecast for a city",
	Long: `Fetch current conditions and the 5-day forecast from OpenWeatherMap.

The API key is read from --api-key or the OPENWEATHER_API_KEY environment
variable. Temperatures are in Celsius.

Examples:
  arcade weather Seoul
  arcade weather "New York" --timeout 5s`,
	Args: cobra.MinimumNArgs(1),
	Run:  runWeather,
}

func init() {
	weatherCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "OpenWeatherMap API key (default $"+weather.APIKeyEnv+")")
	weatherCmd.Flags().DurationVar(&flagTimeout, "timeout", weather.DefaultTimeout, "Request timeout")
	weatherCmd.Flags().StringVar(&flagLang, "lang", "en", "Language of condition descriptions")
}

func runWeather(_ *cobra.Command, args []string) {
	logger := stderrLogger("weather")

	key := flagAPIKey
	if key == "" {
		key = os.Getenv(weather.APIKeyEnv)
	}
	client := weather.NewClient(key)
	client.Lang = flagLang

	city := strings.Join(args, " ")
	ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
	defer cancel()

	logger.Debug("fetching weather", "city", city)
	report, err := client.Report(ctx, city)
	if err != nil {
		logger.Error("weather request failed", "city", city, "error", err)
		fatal("%v", err)
	}
	fmt.Print(weather.Render(report))
}

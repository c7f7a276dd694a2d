package cmd

type Config struct {
	HTTPPort       string
	StorePath      string
	TransportMode  string
	RemoteBaseURL  string
	LocalLatencyMS string
	GeoBaseURL     string
	GeoCountryCode string
	GeoLanguage    string
	SeedDemoData   string
}

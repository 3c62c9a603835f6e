// Package constants provides shared constants for the living-cost application.
package constants

// Data vintage attribution shown alongside results.
const (
	// DataVintage is the published year of the cost figures (ROC calendar).
	DataVintage = "114年度"

	// DataSource names the publishing authority of the figures.
	DataSource = "114年度各縣市最低生活費標準 · 中華民國政府公告"

	// DataUpdated is the month the figures were last refreshed.
	DataUpdated = "2025年1月"

	// CurrencyPrefix is prepended to every formatted amount.
	CurrencyPrefix = "NT$ "
)

// Calculator defaults
const (
	// DefaultMaxHouseholdSize is the UI ceiling for household size. It is
	// configurable through calculator.maxHouseholdSize.
	DefaultMaxHouseholdSize = 20

	// MinHouseholdSize is the smallest household a total is computed for.
	MinHouseholdSize = 1
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. LIVING_COST_CALCULATOR_MAXHOUSEHOLDSIZE.
	EnvPrefix = "LIVING_COST"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes caps form and JSON request bodies (16 KB)
	DefaultMaxRequestSizeBytes int64 = 16 * 1024

	// DefaultReadTimeout is the HTTP server read timeout
	DefaultReadTimeout = "15s"

	// DefaultWriteTimeout is the HTTP server write timeout
	DefaultWriteTimeout = "15s"

	// DefaultShutdownTimeout bounds graceful shutdown
	DefaultShutdownTimeout = "10s"
)

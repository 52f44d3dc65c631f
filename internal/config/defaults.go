package config

const (
	// DefaultResultsDir is where run results are persisted.
	DefaultResultsDir = ".utest"
	// DefaultResultsFile is the JSON file holding the last run.
	DefaultResultsFile = "results.json"
	// DefaultLogLevel keeps internal tracing off.
	DefaultLogLevel = "disabled"
)

// Environment variable names read on top of .env files.
const (
	EnvResultsDir  = "UTEST_RESULTS_DIR"
	EnvResultsFile = "UTEST_RESULTS_FILE"
	EnvHistoryDSN  = "UTEST_HISTORY_DSN"
	EnvLogLevel    = "UTEST_LOG"
)

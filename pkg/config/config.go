package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Config holds engine configuration: the three engine flags, operational
// limits, and logging knobs.
type Config struct {
	// IgnoreNominalUseStructural treats all Nominal identities as
	// Structural(hash(value)) for the lifetime of the engine.
	IgnoreNominalUseStructural bool

	// CheckWellFormed runs the well-formedness check after every
	// top-level client operation. Expensive; intended for tests and
	// debugging, not steady-state production use.
	CheckWellFormed bool

	// WriteDCG emits a graph dump to the configured diagnostic sink on
	// every structural change to the node store.
	WriteDCG bool

	// MaxFrameDepth bounds the frame stack, guarding against unbounded
	// producer recursion. Exceeding it is a BrokenInvariantError, not a
	// silent truncation.
	MaxFrameDepth int

	// MaxStoreSize optionally caps the number of distinct locations the
	// node store will hold. Zero means unlimited.
	MaxStoreSize int

	// LogLevel is the minimum level the attached logger emits at
	// ("debug", "info", "warn", "error").
	LogLevel string

	// LogPretty selects human-readable text logs instead of JSON.
	LogPretty bool

	// DiagnosticSinkPath is a file path WriteDCG dumps are written to
	// when no HTTP surface or other sink is mounted; each dump overwrites
	// the file. Empty disables file-based dumping.
	DiagnosticSinkPath string
}

// Default returns a Config with conservative defaults: all three flags
// off, a frame-depth guard generous enough for realistic graphs, and an
// unlimited store.
func Default() *Config {
	return &Config{
		IgnoreNominalUseStructural: false,
		CheckWellFormed:            false,
		WriteDCG:                   false,
		MaxFrameDepth:              4096,
		MaxStoreSize:               0,
		LogLevel:                   "info",
		LogPretty:                  false,
	}
}

// Debug returns a Config suitable for tests and interactive debugging:
// well-formedness is checked after every operation and logs are
// human-readable.
func Debug() *Config {
	cfg := Default()
	cfg.CheckWellFormed = true
	cfg.LogLevel = "debug"
	cfg.LogPretty = true
	return cfg
}

// Validate checks the configuration for internally inconsistent values.
func (c *Config) Validate() error {
	if c.MaxFrameDepth <= 0 {
		return ErrInvalidMaxFrameDepth
	}
	if c.MaxStoreSize < 0 {
		return ErrInvalidMaxStoreSize
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}

// env variable names used by FromEnv.
const (
	envIgnoreNominal  = "DCG_IGNORE_NOMINAL"
	envCheckWellform  = "DCG_CHECK_WELLFORMED"
	envWriteDCG       = "DCG_WRITE_DCG"
	envMaxFrameDepth  = "DCG_MAX_FRAME_DEPTH"
	envMaxStoreSize   = "DCG_MAX_STORE_SIZE"
	envLogLevel       = "DCG_LOG_LEVEL"
	envLogPretty      = "DCG_LOG_PRETTY"
	envDiagnosticSink = "DCG_DIAGNOSTIC_SINK_PATH"
)

// FromEnv loads a Config from environment variables, starting from
// Default and overriding any field whose variable is set.
func FromEnv() (*Config, error) {
	cfg := Default()

	if v, ok := os.LookupEnv(envIgnoreNominal); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, ErrInvalidEnvValue(envIgnoreNominal, v, err)
		}
		cfg.IgnoreNominalUseStructural = b
	}
	if v, ok := os.LookupEnv(envCheckWellform); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, ErrInvalidEnvValue(envCheckWellform, v, err)
		}
		cfg.CheckWellFormed = b
	}
	if v, ok := os.LookupEnv(envWriteDCG); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, ErrInvalidEnvValue(envWriteDCG, v, err)
		}
		cfg.WriteDCG = b
	}
	if v, ok := os.LookupEnv(envMaxFrameDepth); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, ErrInvalidEnvValue(envMaxFrameDepth, v, err)
		}
		cfg.MaxFrameDepth = n
	}
	if v, ok := os.LookupEnv(envMaxStoreSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, ErrInvalidEnvValue(envMaxStoreSize, v, err)
		}
		cfg.MaxStoreSize = n
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := os.LookupEnv(envLogPretty); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, ErrInvalidEnvValue(envLogPretty, v, err)
		}
		cfg.LogPretty = b
	}
	if v, ok := os.LookupEnv(envDiagnosticSink); ok {
		cfg.DiagnosticSinkPath = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configSchema is the JSON Schema a config document loaded via FromJSON
// must satisfy, embedded so FromJSON never depends on reading a second
// file at runtime.
const configSchema = `{
  "type": "object",
  "properties": {
    "ignore_nominal_use_structural": {"type": "boolean"},
    "check_well_formed": {"type": "boolean"},
    "write_dcg": {"type": "boolean"},
    "max_frame_depth": {"type": "integer", "minimum": 1},
    "max_store_size": {"type": "integer", "minimum": 0},
    "log_level": {"type": "string", "enum": ["debug", "info", "warn", "warning", "error"]},
    "log_pretty": {"type": "boolean"},
    "diagnostic_sink_path": {"type": "string"}
  },
  "additionalProperties": false
}`

// jsonDoc mirrors Config with JSON field names, the shape FromJSON reads.
type jsonDoc struct {
	IgnoreNominalUseStructural bool   `json:"ignore_nominal_use_structural"`
	CheckWellFormed            bool   `json:"check_well_formed"`
	WriteDCG                   bool   `json:"write_dcg"`
	MaxFrameDepth              int    `json:"max_frame_depth"`
	MaxStoreSize               int    `json:"max_store_size"`
	LogLevel                   string `json:"log_level"`
	LogPretty                  bool   `json:"log_pretty"`
	DiagnosticSinkPath         string `json:"diagnostic_sink_path"`
}

// FromJSON loads a Config from a JSON document, validating it against an
// embedded schema before applying it — a malformed document fails fast
// with a schema error rather than silently producing a zero-valued field.
func FromJSON(r io.Reader) (*Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("config: reading document: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(configSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)
	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return nil, fmt.Errorf("config: schema validation error: %w", err)
	}
	if !result.Valid() {
		var details bytes.Buffer
		for i, e := range result.Errors() {
			if i > 0 {
				details.WriteString("; ")
			}
			details.WriteString(e.String())
		}
		return nil, ErrSchemaValidation(details.String())
	}

	var doc jsonDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("config: decoding document: %w", err)
	}

	cfg := &Config{
		IgnoreNominalUseStructural: doc.IgnoreNominalUseStructural,
		CheckWellFormed:            doc.CheckWellFormed,
		WriteDCG:                   doc.WriteDCG,
		MaxFrameDepth:              doc.MaxFrameDepth,
		MaxStoreSize:               doc.MaxStoreSize,
		LogLevel:                   doc.LogLevel,
		LogPretty:                  doc.LogPretty,
		DiagnosticSinkPath:         doc.DiagnosticSinkPath,
	}
	if cfg.MaxFrameDepth == 0 {
		cfg.MaxFrameDepth = Default().MaxFrameDepth
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = Default().LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

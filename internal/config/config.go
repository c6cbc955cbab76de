// Package config loads triage service configuration from a YAML file with
// .env and environment variable overrides.
package config

import "time"

// Default configuration values.
const (
	defaultServiceName      = "triage"
	defaultServiceVersion   = "1.0.0"
	defaultServicePort      = 8080
	defaultConcurrency      = 4
	defaultMaxBatchTexts    = 20
	defaultMaxFileRows      = 50
	defaultAnalyzeRPS       = 100
	defaultLogLevel         = "info"
	defaultLogFormat        = "json"
	defaultModelServiceURL  = "http://sentiment-ml:8090"
	defaultMaxInputChars    = 500
	defaultProbeTimeoutSec  = 3
	defaultAdviceThreshold  = 0.3
	defaultScoreThreshold   = 0.7
	defaultSentimentCutoff  = 0.7
	defaultSaturationFactor = 0.3
)

// Config holds all configuration for the triage service.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Logging   LoggingConfig   `yaml:"logging"`
	Sentiment SentimentConfig `yaml:"sentiment"`
	Triage    TriageConfig    `yaml:"triage"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name          string `yaml:"name"`
	Version       string `yaml:"version"`
	Port          int    `env:"TRIAGE_PORT"        yaml:"port"`
	Debug         bool   `env:"APP_DEBUG"          yaml:"debug"`
	Concurrency   int    `env:"TRIAGE_CONCURRENCY" yaml:"concurrency"`
	MaxBatchTexts int    `yaml:"max_batch_texts"`
	MaxFileRows   int    `yaml:"max_file_rows"`
	AnalyzeRPS    int    `yaml:"analyze_rps"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
	Output string `yaml:"output"`
}

// SentimentConfig holds sentiment model sidecar settings.
type SentimentConfig struct {
	ModelEnabled    bool          `env:"SENTIMENT_MODEL_ENABLED"     yaml:"model_enabled"`
	ModelServiceURL string        `env:"SENTIMENT_MODEL_SERVICE_URL" yaml:"model_service_url"`
	MaxInputChars   int           `yaml:"max_input_chars"`
	ProbeTimeout    time.Duration `yaml:"probe_timeout"`
}

// TriageConfig holds scoring and decision thresholds.
type TriageConfig struct {
	AdviceThreshold    float64 `yaml:"advice_threshold"`
	ScoreThreshold     float64 `yaml:"score_threshold"`
	SentimentThreshold float64 `yaml:"sentiment_threshold"`
	SaturationRatio    float64 `yaml:"saturation_ratio"`
}

// Load loads configuration from the specified path. A missing file is not an
// error; defaults and environment overrides still apply.
func Load(path string) (*Config, error) {
	return loadWithDefaults(path, setDefaults)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setLoggingDefaults(&cfg.Logging)
	setSentimentDefaults(&cfg.Sentiment)
	setTriageDefaults(&cfg.Triage)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaultConcurrency
	}
	if s.MaxBatchTexts == 0 {
		s.MaxBatchTexts = defaultMaxBatchTexts
	}
	if s.MaxFileRows == 0 {
		s.MaxFileRows = defaultMaxFileRows
	}
	if s.AnalyzeRPS == 0 {
		s.AnalyzeRPS = defaultAnalyzeRPS
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}

func setSentimentDefaults(s *SentimentConfig) {
	if s.ModelServiceURL == "" {
		s.ModelServiceURL = defaultModelServiceURL
	}
	if s.MaxInputChars == 0 {
		s.MaxInputChars = defaultMaxInputChars
	}
	if s.ProbeTimeout == 0 {
		s.ProbeTimeout = defaultProbeTimeoutSec * time.Second
	}
}

func setTriageDefaults(t *TriageConfig) {
	if t.AdviceThreshold == 0 {
		t.AdviceThreshold = defaultAdviceThreshold
	}
	if t.ScoreThreshold == 0 {
		t.ScoreThreshold = defaultScoreThreshold
	}
	if t.SentimentThreshold == 0 {
		t.SentimentThreshold = defaultSentimentCutoff
	}
	if t.SaturationRatio == 0 {
		t.SaturationRatio = defaultSaturationFactor
	}
}

package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPort        = "8080"
	DefaultChartWidth  = 800
	DefaultChartHeight = 600
	DefaultMaxSamples  = 100000
	DefaultMaxForms    = 10000
	DefaultFormTTL     = time.Hour
)

// Config se arma desde env; los flags de cmd/api pueden pisarlo.
type Config struct {
	Port string

	ChartWidth  int
	ChartHeight int

	// MaxSamples limita Time Intervals en el servicio HTTP (<= 0 sin límite).
	MaxSamples int

	// Sesiones de formulario en memoria: tope (LRU) y expiración sin uso.
	MaxForms int
	FormTTL  time.Duration
}

// Load lee:
// - PORT (default 8080)
// - CHART_WIDTH / CHART_HEIGHT (default 800x600)
// - MAX_SAMPLES (default 100000)
// - MAX_FORMS (default 10000), FORM_TTL (default 1h, formato time.ParseDuration)
// Valores inválidos caen al default.
func Load() Config {
	return Config{
		Port:        envString("PORT", DefaultPort),
		ChartWidth:  envInt("CHART_WIDTH", DefaultChartWidth),
		ChartHeight: envInt("CHART_HEIGHT", DefaultChartHeight),
		MaxSamples:  envInt("MAX_SAMPLES", DefaultMaxSamples),
		MaxForms:    envInt("MAX_FORMS", DefaultMaxForms),
		FormTTL:     envDuration("FORM_TTL", DefaultFormTTL),
	}
}

// Addr devuelve ":<port>" para http.Server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

package config

import (
	"fmt"
	"log"
	"log/slog"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	LogLevel        slog.Level

	// Persistence
	StoreDriver   string // memory, sqlite, postgres or redis
	SQLitePath    string
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Retention; RetentionDays == 0 disables the sweeper.
	RetentionDays     int
	RetentionSchedule string

	RateLimitRPS   float64
	RateLimitBurst int
	// TrustedProxies lists peers whose X-Forwarded-For header is believed.
	TrustedProxies []netip.Prefix
	CORSOrigin     string
}

// Load reads .env if present, then the environment. Invalid values are fatal.
func Load() *Config {
	_ = godotenv.Load()
	cfg, err := Parse(os.Getenv)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// LoadFile parses a dotenv file without touching the process environment.
func LoadFile(path string) (*Config, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(func(k string) string { return env[k] })
}

// Parse builds a Config from getenv, applying defaults for unset keys.
func Parse(getenv func(string) string) (*Config, error) {
	p := parser{getenv: getenv}
	cfg := &Config{
		ServerAddress:     p.getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout:   p.duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:          p.level("LOG_LEVEL", slog.LevelInfo),
		StoreDriver:       strings.ToLower(p.getenvDefault("STORE_DRIVER", "memory")),
		SQLitePath:        p.getenvDefault("SQLITE_PATH", "selfcheck.db"),
		PostgresDSN:       p.getenvDefault("POSTGRES_DSN", ""),
		RedisAddr:         p.getenvDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     p.getenvDefault("REDIS_PASSWORD", ""),
		RedisDB:           p.integer("REDIS_DB", 0),
		RetentionDays:     p.integer("RETENTION_DAYS", 0),
		RetentionSchedule: p.getenvDefault("RETENTION_SCHEDULE", "@daily"),
		RateLimitRPS:      p.float("RATE_LIMIT_RPS", 20),
		RateLimitBurst:    p.integer("RATE_LIMIT_BURST", 40),
		TrustedProxies:    p.prefixes("TRUSTED_PROXIES"),
		CORSOrigin:        p.getenvDefault("CORS_ORIGIN", "*"),
	}
	if p.err != nil {
		return nil, p.err
	}

	switch cfg.StoreDriver {
	case "memory", "sqlite", "redis":
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("POSTGRES_DSN is required when STORE_DRIVER=postgres")
		}
	default:
		return nil, fmt.Errorf("STORE_DRIVER=%q is not one of memory, sqlite, postgres, redis", cfg.StoreDriver)
	}
	if cfg.RetentionDays < 0 {
		return nil, fmt.Errorf("RETENTION_DAYS=%d must not be negative", cfg.RetentionDays)
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return cfg, nil
}

// parser keeps the first conversion error so Parse can report it once.
type parser struct {
	getenv func(string) string
	err    error
}

func (p *parser) fail(k, v string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("%s=%q: %w", k, v, err)
	}
}

func (p *parser) getenvDefault(k, fallback string) string {
	if v := p.getenv(k); v != "" {
		return v
	}
	return fallback
}

func (p *parser) duration(k string, fallback time.Duration) time.Duration {
	v := p.getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(k, v, err)
	}
	return d
}

func (p *parser) integer(k string, fallback int) int {
	v := p.getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(k, v, err)
	}
	return n
}

func (p *parser) float(k string, fallback float64) float64 {
	v := p.getenv(k)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(k, v, err)
	}
	return f
}

func (p *parser) level(k string, fallback slog.Level) slog.Level {
	v := p.getenv(k)
	if v == "" {
		return fallback
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		p.fail(k, v, err)
	}
	return l
}

// prefixes reads a comma-separated list of IPs or CIDR ranges. A bare IP
// becomes a single-address prefix.
func (p *parser) prefixes(k string) []netip.Prefix {
	v := p.getenv(k)
	if v == "" {
		return nil
	}
	var out []netip.Prefix
	for _, field := range strings.Split(v, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if strings.Contains(field, "/") {
			prefix, err := netip.ParsePrefix(field)
			if err != nil {
				p.fail(k, v, err)
				return nil
			}
			out = append(out, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(field)
		if err != nil {
			p.fail(k, v, err)
			return nil
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out
}

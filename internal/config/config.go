package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode      Mode   `env:"MODE" envDefault:"offline"`
	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":8080"`
	PublicURL string `env:"PUBLIC_URL"`

	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBDSN    string `env:"DB_DSN"`

	HistoryDriver string `env:"HISTORY_DRIVER" envDefault:"sql"` // memory|sql
	SiteID        string `env:"SITE_ID" envDefault:"local"`      // stamped on event_log rows

	AuthHMACSecret string `env:"AUTH_HMAC_SECRET" envDefault:"supersecret-dev-key"`
	AdminUser      string `env:"ADMIN_USER" envDefault:"teacher"`
	AdminPassHash  string `env:"ADMIN_PASS_HASH" envDefault:"$2y$12$pyZAiWaTfVtM7UElIRStvOC3gNbnp70nmQU4eYopLGBfCJr1DOvji"` // bcrypt

	CORSOriginsOnline  []string `env:"CORS_ORIGINS_ONLINE" envSeparator:"," envDefault:"https://writescore.mindengage.ai"`
	CORSOriginsOffline []string `env:"CORS_ORIGINS_OFFLINE" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`

	// LanguageTool
	LTEndpoint string        `env:"LT_ENDPOINT" envDefault:"https://api.languagetool.org/v2/check"`
	LTLang     string        `env:"LT_LANG" envDefault:"en-GB"`
	LTTimeout  time.Duration `env:"LT_TIMEOUT" envDefault:"10s"`
	LTDisabled bool          `env:"LT_DISABLED" envDefault:"false"`

	SpellDict    string `env:"SPELL_DICT"`     // optional extra word list, one word per line
	TopicsFile   string `env:"TOPICS_FILE"`    // optional YAML topic catalogue
	BlobBasePath string `env:"BLOB_BASE_PATH"` // submitted texts are archived here when set

	OTELEndpoint string `env:"OTEL_ENDPOINT"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Mode != ModeOnline {
		cfg.Mode = ModeOffline
	}
	return cfg, nil
}

// CORSOrigins returns the allowed origins for the configured mode.
func (c Config) CORSOrigins() []string {
	if c.Mode == ModeOnline {
		return c.CORSOriginsOnline
	}
	return c.CORSOriginsOffline
}

package activityboard

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/activityboard/activityboard/activityboard/config"
	"github.com/activityboard/activityboard/activityboard/database"
	"github.com/activityboard/activityboard/activityboard/secrets"
	"github.com/disgoorg/snowflake/v2"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

const (
	RunModeGateway = "gateway"
	RunModeHTTP    = "http"
)

// LoadConfig reads the TOML file at path, then applies .env and environment
// overrides. A missing file is not an error so the bot can run from the
// environment alone.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	file, err := os.Open(path)
	switch {
	case err == nil:
		defer file.Close()
		if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		slog.Warn("Config file not found, using environment only", slog.String("path", path))
	default:
		return nil, fmt.Errorf("failed to open config: %w", err)
	}

	// .env is optional, real environment variables win over it
	_ = godotenv.Load()

	if err = cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

type Config struct {
	Log     LogConfig     `toml:"log"`
	Bot     BotConfig     `toml:"bot"`
	DB      DBConfig      `toml:"db"`
	Secrets SecretsConfig `toml:"secrets"`
	Session SessionConfig `toml:"session"`
}

type BotConfig struct {
	DevGuilds []snowflake.ID `toml:"dev_guilds"`
	Token     string         `toml:"token"`
	// RunMode is "gateway" (default) or "http". In http mode interactions
	// arrive on the webhook server and the gateway only carries messages.
	RunMode        string `toml:"run_mode"`
	WebhookAddress string `toml:"webhook_address"`
	WebhookPath    string `toml:"webhook_path"`
	PublicKey      string `toml:"public_key"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type DBConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

// ConnConfig converts the [db] section for database.New
func (c DBConfig) ConnConfig() database.DBConfig {
	return database.DBConfig{
		Host:     c.Host,
		Port:     c.Port,
		User:     c.User,
		Password: c.Password,
		Database: c.Database,
		PoolSize: c.PoolSize,
	}
}

type SecretsConfig struct {
	Region             string `toml:"region"`
	AccessKey          string `toml:"access_key"`
	SecretKey          string `toml:"secret_key"`
	TokenSecretID      string `toml:"token_secret_id"`
	DBPasswordSecretID string `toml:"db_password_secret_id"`
}

// Enabled reports whether any value should be pulled from the secret store
func (c SecretsConfig) Enabled() bool {
	return c.TokenSecretID != "" || c.DBPasswordSecretID != ""
}

type SessionConfig struct {
	Timeout  Duration `toml:"timeout"`
	Capacity int      `toml:"capacity"`
}

// Duration decodes TOML strings such as "30m"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	setString := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	setString("BOT_TOKEN", &c.Bot.Token)
	setString("RUN_MODE", &c.Bot.RunMode)
	setString("WEBHOOK_ADDRESS", &c.Bot.WebhookAddress)
	setString("WEBHOOK_PATH", &c.Bot.WebhookPath)
	setString("PUBLIC_KEY", &c.Bot.PublicKey)

	setString("DB_HOST", &c.DB.Host)
	setString("DB_USER", &c.DB.User)
	setString("DB_PASS", &c.DB.Password)
	setString("DB_NAME", &c.DB.Database)
	if v, ok := lookup("DB_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid DB_PORT %q: %w", v, err)
		}
		c.DB.Port = port
	}

	setString("AWS_REGION", &c.Secrets.Region)
	setString("TOKEN_SECRET_ID", &c.Secrets.TokenSecretID)
	setString("DB_PASSWORD_SECRET_ID", &c.Secrets.DBPasswordSecretID)

	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		if err := c.Log.Level.UnmarshalText([]byte(v)); err != nil {
			return fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Bot.RunMode == "" {
		c.Bot.RunMode = RunModeGateway
	}
	c.Bot.RunMode = strings.ToLower(c.Bot.RunMode)
	if c.Bot.WebhookAddress == "" {
		c.Bot.WebhookAddress = ":8080"
	}
	if c.Bot.WebhookPath == "" {
		c.Bot.WebhookPath = "/interactions/callback"
	}
	if c.DB.Host == "" {
		c.DB.Host = "127.0.0.1"
	}
	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	if c.DB.PoolSize == 0 {
		c.DB.PoolSize = 5
	}
	if c.Session.Timeout.Duration <= 0 {
		c.Session.Timeout.Duration = config.DefaultSessionTimeout
	}
	if c.Session.Capacity <= 0 {
		c.Session.Capacity = config.DefaultSessionCapacity
	}
}

// ResolveSecrets fills the bot token and database password from the secret
// store when they are empty and a secret id is configured.
func (c *Config) ResolveSecrets(ctx context.Context, p secrets.Provider) error {
	if c.Bot.Token == "" && c.Secrets.TokenSecretID != "" {
		token, err := p.Secret(ctx, c.Secrets.TokenSecretID)
		if err != nil {
			return fmt.Errorf("failed to resolve bot token: %w", err)
		}
		c.Bot.Token = token
	}
	if c.DB.Password == "" && c.Secrets.DBPasswordSecretID != "" {
		password, err := p.Secret(ctx, c.Secrets.DBPasswordSecretID)
		if err != nil {
			return fmt.Errorf("failed to resolve database password: %w", err)
		}
		c.DB.Password = password
	}
	return nil
}

// SecretsProvider returns the AWS secret store when a secret id is configured
// and nil otherwise
func (c *Config) SecretsProvider(ctx context.Context) (secrets.Provider, error) {
	if !c.Secrets.Enabled() {
		return nil, nil
	}
	return secrets.NewAWSProvider(ctx, secrets.Options{
		Region:    c.Secrets.Region,
		AccessKey: c.Secrets.AccessKey,
		SecretKey: c.Secrets.SecretKey,
	})
}

// Validate checks the configuration once secrets have been resolved
func (c *Config) Validate() error {
	if c.Bot.Token == "" {
		return errors.New("bot token is not configured")
	}
	switch c.Bot.RunMode {
	case RunModeGateway:
	case RunModeHTTP:
		if c.Bot.PublicKey == "" {
			return errors.New("public key is required in http run mode")
		}
	default:
		return fmt.Errorf("unknown run mode %q", c.Bot.RunMode)
	}
	if c.DB.User == "" || c.DB.Database == "" {
		return errors.New("database user and name are required")
	}
	return nil
}

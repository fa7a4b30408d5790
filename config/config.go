package config

import (
	"net/url"
	"strings"
	"time"

	"guestpass/internal/errors"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "16KB"
	defaultMaxDevices         = 2
	defaultMaxDevicesCeiling  = 20
	defaultTokenBytes         = 24
	defaultGrantTokenTTL      = 30 * time.Minute
	defaultAdminTokenTTL      = 8 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		// Grant signs the short-lived invitation grants handed to guests.
		Grant string `json:"grant" yaml:"grant"`
		// Admin signs host session tokens.
		Admin string `json:"admin" yaml:"admin"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Access *AccessConfig `json:"access" yaml:"access"`

	// Firebase configuration for host alerts
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for invitation QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for access event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	Migrate *MigrateConfig `json:"migrate" yaml:"migrate"`

	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines host authentication and grant issuing
type AuthConfig struct {
	BcryptCost    int           `json:"bcryptCost" yaml:"bcryptCost"`
	GrantTokenTTL time.Duration `json:"grantTokenTTL" yaml:"grantTokenTTL"`
	AdminTokenTTL time.Duration `json:"adminTokenTTL" yaml:"adminTokenTTL"`
	Admins        []AdminUser   `json:"admins" yaml:"admins"`
}

// AdminUser is a host account allowed to manage guests
type AdminUser struct {
	Username     string `json:"username" yaml:"username"`
	PasswordHash string `json:"passwordHash" yaml:"passwordHash"`
	// admin (default) or viewer
	Role string `json:"role" yaml:"role"`
}

// AccessConfig defines invitation link and device quota settings
type AccessConfig struct {
	// Quota applied to guests created without an explicit one
	DefaultMaxDevices int `json:"defaultMaxDevices" yaml:"defaultMaxDevices"`

	// Upper bound accepted by the admin quota endpoint
	MaxDevicesCeiling int `json:"maxDevicesCeiling" yaml:"maxDevicesCeiling"`

	// Random bytes used for a freshly generated token
	TokenBytes int `json:"tokenBytes" yaml:"tokenBytes"`

	// Invitation links are InvitationBaseURL + "/" + token
	InvitationBaseURL string `json:"invitationBaseUrl" yaml:"invitationBaseUrl"`
}

// FirebaseConfig defines Firebase configuration for host push alerts
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	HostAlertTopic  string `json:"hostAlertTopic" yaml:"hostAlertTopic"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of push OIDC tokens received by the worker
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// RateLimitConfig throttles identity submissions per client
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Requests int           `json:"requests" yaml:"requests"`
	Window   time.Duration `json:"window" yaml:"window"`
	Redis    *RedisConfig  `json:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

type MigrateConfig struct {
	DatabaseURL string `json:"databaseUrl" yaml:"databaseUrl"`
}

type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// New loads config.yaml (or the file named by GUESTPASS_CONFIG), applies
// environment overrides and defaults, then validates the result.
func New() (*Config, error) {
	cfg := new(Config)
	if err := load(cfg, "config", "config", "../config", "../../config"); err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Access == nil {
		cfg.Access = &AccessConfig{}
	}
	if cfg.Access.DefaultMaxDevices <= 0 {
		cfg.Access.DefaultMaxDevices = defaultMaxDevices
	}
	if cfg.Access.MaxDevicesCeiling < cfg.Access.DefaultMaxDevices {
		cfg.Access.MaxDevicesCeiling = max(defaultMaxDevicesCeiling, cfg.Access.DefaultMaxDevices)
	}
	if cfg.Access.TokenBytes < 16 {
		cfg.Access.TokenBytes = defaultTokenBytes
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.GrantTokenTTL <= 0 {
		cfg.Auth.GrantTokenTTL = defaultGrantTokenTTL
	}
	if cfg.Auth.AdminTokenTTL <= 0 {
		cfg.Auth.AdminTokenTTL = defaultAdminTokenTTL
	}
}

// validate reports settings the services cannot start with. Signing keys are
// checked by the token service, which is the only consumer.
func (cfg *Config) validate() error {
	var problems []error

	if base := cfg.Access.InvitationBaseURL; base != "" {
		if u, err := url.Parse(base); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			problems = append(problems, errors.Errorf("access.invitationBaseUrl %q must be an absolute http(s) URL", base))
		}
	}

	seen := make(map[string]bool, len(cfg.Auth.Admins))
	for i, admin := range cfg.Auth.Admins {
		name := strings.TrimSpace(admin.Username)
		switch {
		case name == "":
			problems = append(problems, errors.Errorf("auth.admins[%d].username is empty", i))
		case seen[name]:
			problems = append(problems, errors.Errorf("auth.admins[%d].username %q is duplicated", i, name))
		}
		seen[name] = true
	}

	if len(problems) == 0 {
		return nil
	}

	return errors.Wrap(errors.Join(problems...), "invalid config")
}

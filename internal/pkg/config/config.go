package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, auth backend url, secrets)
// - default: Values common across all environments (timezone, timeout, allow-list, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Redirect RedirectConfig
	Form     FormConfig
	CORS     CORSConfig
	Log      LogConfig
	Cookie   CookieConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type AuthConfig struct {
	BaseURL string        `envconfig:"AUTH_API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"AUTH_API_TIMEOUT" default:"10s"`
}

type RedirectConfig struct {
	AllowList []string `envconfig:"REDIRECT_ALLOW_LIST" default:"/dashboard,/profile,/settings,/"`
	Default   string   `envconfig:"REDIRECT_DEFAULT" default:"/dashboard"`
}

type FormConfig struct {
	ValidateOnChange bool `envconfig:"FORM_VALIDATE_ON_CHANGE" default:"true"`
	ValidateOnBlur   bool `envconfig:"FORM_VALIDATE_ON_BLUR" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// DevAuthConfig is only read by cmd/devauth.
type DevAuthConfig struct {
	Port             string        `envconfig:"DEVAUTH_PORT" default:"9090"`
	JWTSecret        string        `envconfig:"DEVAUTH_JWT_SECRET" required:"true"`
	AccessTTL        time.Duration `envconfig:"DEVAUTH_ACCESS_TTL" default:"15m"`
	RefreshTTL       time.Duration `envconfig:"DEVAUTH_REFRESH_TTL" default:"720h"`
	RememberMeTTL    time.Duration `envconfig:"DEVAUTH_REMEMBER_ME_TTL" default:"720h"`
	UsersFile        string        `envconfig:"DEVAUTH_USERS_FILE" default:""`
	MaxFailures      int           `envconfig:"DEVAUTH_MAX_FAILURES" default:"5"`
	FailureWindow    time.Duration `envconfig:"DEVAUTH_FAILURE_WINDOW" default:"15m"`
	MaxRequestsPerIP int           `envconfig:"DEVAUTH_MAX_REQUESTS_PER_IP" default:"30"`
	RequestWindow    time.Duration `envconfig:"DEVAUTH_REQUEST_WINDOW" default:"1m"`
	Log              LogConfig
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func LoadDevAuthConfig() (DevAuthConfig, error) {
	var cfg DevAuthConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		return DevAuthConfig{}, fmt.Errorf("failed to process devauth env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Auth: AuthConfig{
			BaseURL: "http://localhost:19090",
			Timeout: 2 * time.Second,
		},
		Redirect: RedirectConfig{
			AllowList: []string{"/dashboard", "/profile", "/settings", "/"},
			Default:   "/dashboard",
		},
		Form: FormConfig{
			ValidateOnChange: true,
			ValidateOnBlur:   true,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
	}
}

func NewTestDevAuthConfig() DevAuthConfig {
	return DevAuthConfig{
		Port:             "19090",
		JWTSecret:        "test-secret",
		AccessTTL:        15 * time.Minute,
		RefreshTTL:       24 * time.Hour,
		RememberMeTTL:    30 * 24 * time.Hour,
		MaxFailures:      3,
		FailureWindow:    15 * time.Minute,
		MaxRequestsPerIP: 100,
		RequestWindow:    time.Minute,
		Log:              NewTestConfig().Log,
	}
}

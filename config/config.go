package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Workflow WorkflowConfig
}

type AppConfig struct {
	Port           string
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

type DBConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	AutoMigrate bool
}

type RedisConfig struct {
	Host        string
	Port        string
	Password    string
	DB          int
	// PingTimeout bounds the start-up connectivity check and each dial.
	PingTimeout time.Duration
}

// JWTConfig only carries the signing secret. Session tokens have no built-in
// expiry, their liveness lives in Redis.
type JWTConfig struct {
	Secret string
}

type AuthConfig struct {
	// EmailDomain is the organization suffix every account email must use.
	EmailDomain string
	// PasswordChangeLogout revokes the caller's own token after a password change.
	PasswordChangeLogout bool
}

// Caseload policies for the doctor view of consultation requests.
const (
	CaseloadAll      = "all"
	CaseloadAssigned = "assigned"
)

type WorkflowConfig struct {
	DoctorCaseload       string
	CancelReasonRequired bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DB_AUTO_MIGRATE", true)
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PING_TIMEOUT", "5s")
	viper.SetDefault("AUTH_EMAIL_DOMAIN", "esi-sba.dz")
	viper.SetDefault("AUTH_PASSWORD_CHANGE_LOGOUT", false)
	viper.SetDefault("WORKFLOW_DOCTOR_CASELOAD", CaseloadAll)
	viper.SetDefault("WORKFLOW_CANCEL_REASON_REQUIRED", false)

	if err := viper.ReadInConfig(); err != nil {
		// Running from plain environment variables is fine (containers).
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:           viper.GetString("APP_PORT"),
			Env:            viper.GetString("APP_ENV"),
			LogLevel:       viper.GetString("LOG_LEVEL"),
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Host:        viper.GetString("DB_HOST"),
			Port:        viper.GetString("DB_PORT"),
			User:        viper.GetString("DB_USER"),
			Password:    viper.GetString("DB_PASSWORD"),
			Name:        viper.GetString("DB_NAME"),
			AutoMigrate: viper.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:        viper.GetString("REDIS_HOST"),
			Port:        viper.GetString("REDIS_PORT"),
			Password:    viper.GetString("REDIS_PASSWORD"),
			DB:          viper.GetInt("REDIS_DB"),
			PingTimeout: viper.GetDuration("REDIS_PING_TIMEOUT"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
		},
		Auth: AuthConfig{
			EmailDomain:          strings.TrimPrefix(viper.GetString("AUTH_EMAIL_DOMAIN"), "@"),
			PasswordChangeLogout: viper.GetBool("AUTH_PASSWORD_CHANGE_LOGOUT"),
		},
		Workflow: WorkflowConfig{
			DoctorCaseload:       viper.GetString("WORKFLOW_DOCTOR_CASELOAD"),
			CancelReasonRequired: viper.GetBool("WORKFLOW_CANCEL_REASON_REQUIRED"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects configurations the service cannot run with.
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.Auth.EmailDomain == "" {
		return errors.New("AUTH_EMAIL_DOMAIN is required")
	}
	switch c.Workflow.DoctorCaseload {
	case CaseloadAll, CaseloadAssigned:
	default:
		return errors.New("WORKFLOW_DOCTOR_CASELOAD must be 'all' or 'assigned'")
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

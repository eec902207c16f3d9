package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Meta             Meta             `mapstructure:",squash"`
	Report           Report           `mapstructure:",squash"`
	Messenger        Messenger        `mapstructure:",squash"`
	WebhookRetention WebhookRetention `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL        string        `mapstructure:"meta_base_url"`
	URL            string        `mapstructure:"-"`
	Version        string        `mapstructure:"meta_version"`
	AccessToken    string        `mapstructure:"fb_access_token"`
	AdAccountID    string        `mapstructure:"ad_account_id"`
	RequestTimeout time.Duration `mapstructure:"meta_request_timeout"`
}

// Report agrupa os limites do pipeline de relatório
type Report struct {
	MaxLookbackDays       int      `mapstructure:"report_max_lookback_days"`
	RequestDelayMS        int      `mapstructure:"report_request_delay_ms"`
	ThrottleBackoffMS     int      `mapstructure:"report_throttle_backoff_ms"`
	MaxConcurrentRequests int      `mapstructure:"report_max_concurrent_requests"`
	CampaignsLimit        int      `mapstructure:"report_campaigns_limit"`
	AdsLimit              int      `mapstructure:"report_ads_limit"`
	MaxAdsWithCreatives   int      `mapstructure:"report_max_ads_with_creatives"`
	CampaignStatuses      []string `mapstructure:"report_campaign_statuses"`
	PlaceholderImage      string   `mapstructure:"report_placeholder_image"`
}

func (r Report) RequestDelay() time.Duration {
	return time.Duration(r.RequestDelayMS) * time.Millisecond
}

func (r Report) ThrottleBackoff() time.Duration {
	return time.Duration(r.ThrottleBackoffMS) * time.Millisecond
}

type Messenger struct {
	VerifyToken     string `mapstructure:"messenger_verify_token"`
	AppSecret       string `mapstructure:"messenger_app_secret"`
	TrackingEnabled bool   `mapstructure:"tracking_enabled"`
}

type WebhookRetention struct {
	CronSchedule string `mapstructure:"webhook_retention_cron"`
	Days         int    `mapstructure:"webhook_retention_days"`
	Enabled      bool   `mapstructure:"webhook_retention_enabled"`
}

// Status aceitos pela Graph API no filtro effective_status de campanhas
var DefaultCampaignStatuses = []string{
	"ACTIVE",
	"PAUSED",
	"DELETED",
	"ARCHIVED",
	"IN_PROCESS",
	"WITH_ISSUES",
	"CAMPAIGN_PAUSED",
	"COMPLETED",
	"INACTIVE",
}

const DefaultPlaceholderImage = "https://placehold.co/120x120/0d0c1d/a0a0b0?text=No+Image"

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", 8000)

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_URL", "localhost:5432/ads_dashboard?sslmode=disable")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "")

	v.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	v.SetDefault("META_VERSION", "v19.0")
	v.SetDefault("META_REQUEST_TIMEOUT", "30s")
	// Sem default: ausência é erro de configuração no relatório
	v.SetDefault("FB_ACCESS_TOKEN", "")
	v.SetDefault("AD_ACCOUNT_ID", "")

	v.SetDefault("REPORT_MAX_LOOKBACK_DAYS", 1125) // ~37 meses, limite de retenção da Graph API
	v.SetDefault("REPORT_REQUEST_DELAY_MS", 200)
	v.SetDefault("REPORT_THROTTLE_BACKOFF_MS", 2000)
	v.SetDefault("REPORT_MAX_CONCURRENT_REQUESTS", 5)
	v.SetDefault("REPORT_CAMPAIGNS_LIMIT", 100)
	v.SetDefault("REPORT_ADS_LIMIT", 50)
	v.SetDefault("REPORT_MAX_ADS_WITH_CREATIVES", 10)
	v.SetDefault("REPORT_CAMPAIGN_STATUSES", DefaultCampaignStatuses)
	v.SetDefault("REPORT_PLACEHOLDER_IMAGE", DefaultPlaceholderImage)

	v.SetDefault("MESSENGER_VERIFY_TOKEN", "")
	v.SetDefault("MESSENGER_APP_SECRET", "")
	v.SetDefault("TRACKING_ENABLED", false)

	v.SetDefault("WEBHOOK_RETENTION_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	v.SetDefault("WEBHOOK_RETENTION_DAYS", 90)
	v.SetDefault("WEBHOOK_RETENTION_ENABLED", false)

	v.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("config: .env not read by viper, using environment only: ", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.BaseURL = strings.TrimRight(config.Meta.BaseURL, "/")
	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.Report.CampaignStatuses = normalizeStatuses(config.Report.CampaignStatuses)
	if len(config.Report.CampaignStatuses) == 0 {
		config.Report.CampaignStatuses = DefaultCampaignStatuses
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func normalizeStatuses(statuses []string) []string {
	result := make([]string, 0, len(statuses))
	for _, status := range statuses {
		status = strings.ToUpper(strings.TrimSpace(status))
		if status != "" {
			result = append(result, status)
		}
	}
	return result
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: loaded .env from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, using process environment")
}

package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	Auth     AuthConfig     `yaml:"auth"`
	Push     PushConfig     `yaml:"push"`
	WhatsApp WhatsAppConfig `yaml:"whatsapp"`
	Storage  StorageConfig  `yaml:"storage"`
	Intercom IntercomConfig `yaml:"intercom"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
// WriteTimeout stays zero by default: the event stream is a long-lived response.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"0s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// RedisConfig holds the shared key-value / pub-sub store settings.
type RedisConfig struct {
	URL          string        `yaml:"url"           env:"REDIS_URL"           env-required:"true"`
	PoolSize     int           `yaml:"pool_size"     env:"REDIS_POOL_SIZE"     env-default:"20"`
	DialTimeout  time.Duration `yaml:"dial_timeout"  env:"REDIS_DIAL_TIMEOUT"  env-default:"3s"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"REDIS_READ_TIMEOUT"  env-default:"2s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"REDIS_WRITE_TIMEOUT" env-default:"2s"`
}

// MQTTConfig holds the door-controller broker settings.
type MQTTConfig struct {
	BrokerURL      string        `yaml:"broker_url"      env:"MQTT_BROKER_URL"      env-required:"true"`
	Username       string        `yaml:"username"        env:"MQTT_USERNAME"`
	Password       string        `yaml:"password"        env:"MQTT_PASSWORD"`
	Namespace      string        `yaml:"namespace"       env:"MQTT_NAMESPACE"       env-default:"intercom"`
	ClientIDPrefix string        `yaml:"client_id_prefix" env:"MQTT_CLIENT_ID_PREFIX" env-default:"intercom-api"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MQTT_CONNECT_TIMEOUT" env-default:"4s"`
	HardTimeout    time.Duration `yaml:"hard_timeout"    env:"MQTT_HARD_TIMEOUT"    env-default:"7s"`
}

// AuthConfig holds session token validation settings. Tokens are issued elsewhere.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"intercom"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// PushConfig holds the mobile push provider settings.
type PushConfig struct {
	BaseURL string        `yaml:"base_url" env:"PUSH_BASE_URL" env-default:"https://onesignal.com/api/v1"`
	AppID   string        `yaml:"app_id"   env:"PUSH_APP_ID"`
	APIKey  string        `yaml:"api_key"  env:"PUSH_API_KEY"`
	Timeout time.Duration `yaml:"timeout"  env:"PUSH_TIMEOUT"  env-default:"5s"`
}

// WhatsAppConfig holds the chat channel settings, both outbound and inbound.
type WhatsAppConfig struct {
	BaseURL       string        `yaml:"base_url"        env:"WHATSAPP_BASE_URL"        env-default:"https://graph.facebook.com/v20.0"`
	PhoneNumberID string        `yaml:"phone_number_id" env:"WHATSAPP_PHONE_NUMBER_ID"`
	AccessToken   string        `yaml:"access_token"    env:"WHATSAPP_ACCESS_TOKEN"`
	TemplateName  string        `yaml:"template_name"   env:"WHATSAPP_TEMPLATE_NAME"   env-default:"doorbell_ring"`
	TemplateLang  string        `yaml:"template_lang"   env:"WHATSAPP_TEMPLATE_LANG"   env-default:"es"`
	VerifyToken   string        `yaml:"verify_token"    env:"WHATSAPP_VERIFY_TOKEN"`
	AppSecret     string        `yaml:"app_secret"      env:"WHATSAPP_APP_SECRET"`
	Timeout       time.Duration `yaml:"timeout"         env:"WHATSAPP_TIMEOUT"         env-default:"5s"`
}

// Enabled reports whether outbound template messages are configured.
func (c WhatsAppConfig) Enabled() bool {
	return c.PhoneNumberID != "" && c.AccessToken != ""
}

// StorageConfig holds the visitor photo bucket settings.
type StorageConfig struct {
	BaseURL       string        `yaml:"base_url"        env:"STORAGE_BASE_URL"`
	PublicBaseURL string        `yaml:"public_base_url" env:"STORAGE_PUBLIC_BASE_URL"`
	Bucket        string        `yaml:"bucket"          env:"STORAGE_BUCKET"          env-default:"visitor-photos"`
	APIKey        string        `yaml:"api_key"         env:"STORAGE_API_KEY"`
	MaxPhotoBytes int64         `yaml:"max_photo_bytes" env:"STORAGE_MAX_PHOTO_BYTES" env-default:"5242880"`
	Timeout       time.Duration `yaml:"timeout"         env:"STORAGE_TIMEOUT"         env-default:"10s"`
}

// IntercomConfig holds pipeline tuning.
type IntercomConfig struct {
	RingLimit         int           `yaml:"ring_limit"          env:"INTERCOM_RING_LIMIT"          env-default:"5"`
	RingWindow        time.Duration `yaml:"ring_window"         env:"INTERCOM_RING_WINDOW"         env-default:"60s"`
	StreamLimit       int           `yaml:"stream_limit"        env:"INTERCOM_STREAM_LIMIT"        env-default:"10"`
	StreamWindow      time.Duration `yaml:"stream_window"       env:"INTERCOM_STREAM_WINDOW"       env-default:"60s"`
	IPLimit           int           `yaml:"ip_limit"            env:"INTERCOM_IP_LIMIT"            env-default:"30"`
	IPWindow          time.Duration `yaml:"ip_window"           env:"INTERCOM_IP_WINDOW"           env-default:"60s"`
	Heartbeat         time.Duration `yaml:"heartbeat"           env:"INTERCOM_HEARTBEAT"           env-default:"15s"`
	MissedAfter       time.Duration `yaml:"missed_after"        env:"INTERCOM_MISSED_AFTER"        env-default:"3m"`
	FanoutConcurrency int           `yaml:"fanout_concurrency"  env:"INTERCOM_FANOUT_CONCURRENCY"  env-default:"16"`
	MaxMessageLength  int           `yaml:"max_message_length"  env:"INTERCOM_MAX_MESSAGE_LENGTH"  env-default:"500"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "2MB"

	defaultTokenTTL         = 30 * 24 * time.Hour
	defaultPricePerLocation = 999
	defaultCurrency         = "INR"
	defaultValidityDays     = 30
	defaultCoverageRadius   = 5000
	defaultCategory         = "residential"
	defaultListingTTL       = time.Minute
	defaultCountry          = "IN"
	defaultUpstreamTimeout  = 10 * time.Second
	defaultBannerTTL        = time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
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

	// SecretKey.Access signs bearer tokens. It has no default and must be set.
	SecretKey SecretKey `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Subscription *SubscriptionConfig `json:"subscription" yaml:"subscription"`

	Property *PropertyConfig `json:"property" yaml:"property"`

	// Redis is optional; listing and banner caching is disabled without it.
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	// PubSub configuration for listing moderation events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Regions *RegionsConfig `json:"regions" yaml:"regions"`

	Banners *BannersConfig `json:"banners" yaml:"banners"`
}

type SecretKey struct {
	Access string `json:"access" yaml:"access"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL   time.Duration `json:"tokenTTL" yaml:"tokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// Coverage policies for the location access check.
const (
	CoveragePolicyRadius = "radius"
	CoveragePolicyAny    = "any"
)

// SubscriptionConfig defines pricing and coverage rules for broker subscriptions
type SubscriptionConfig struct {
	PricePerLocation float64 `json:"pricePerLocation" yaml:"pricePerLocation"`
	Currency         string  `json:"currency" yaml:"currency"`
	ValidityDays     int     `json:"validityDays" yaml:"validityDays"`
	// DefaultRadius in meters applied to locations submitted without one
	DefaultRadius float64 `json:"defaultRadius" yaml:"defaultRadius"`
	// CoveragePolicy is "radius" (distance check) or "any" (any active subscription grants access)
	CoveragePolicy string `json:"coveragePolicy" yaml:"coveragePolicy"`
}

// PropertyConfig defines listing defaults
type PropertyConfig struct {
	DefaultCategory string `json:"defaultCategory" yaml:"defaultCategory"`
	// NearbyRadius in meters used when the nearby query has no radius
	NearbyRadius float64       `json:"nearbyRadius" yaml:"nearbyRadius"`
	ListingTTL   time.Duration `json:"listingTTL" yaml:"listingTTL"`
}

// RedisConfig defines the optional cache connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// PaymentConfig selects the payment gateway
type PaymentConfig struct {
	// Provider type: "simulated" or "stripe"
	Provider        string `json:"provider" yaml:"provider"`
	StripeSecretKey string `json:"stripeSecretKey" yaml:"stripeSecretKey"`
	// StripePaymentMethod is the payment method confirmed against each intent
	StripePaymentMethod string `json:"stripePaymentMethod" yaml:"stripePaymentMethod"`
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
}

// RegionsConfig points at the state/city directory service
type RegionsConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	Country string        `json:"country" yaml:"country"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// BannersConfig points at the banner service and its fallback images
type BannersConfig struct {
	URL      string        `json:"url" yaml:"url"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	CacheTTL time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
	Fallback []string      `json:"fallback" yaml:"fallback"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return nil, errors.New("secretKey.access must be provided")
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	if cfg.Subscription == nil {
		cfg.Subscription = &SubscriptionConfig{}
	}
	if cfg.Subscription.PricePerLocation <= 0 {
		cfg.Subscription.PricePerLocation = defaultPricePerLocation
	}
	if cfg.Subscription.Currency == "" {
		cfg.Subscription.Currency = defaultCurrency
	}
	if cfg.Subscription.ValidityDays <= 0 {
		cfg.Subscription.ValidityDays = defaultValidityDays
	}
	if cfg.Subscription.DefaultRadius <= 0 {
		cfg.Subscription.DefaultRadius = defaultCoverageRadius
	}
	if cfg.Subscription.CoveragePolicy != CoveragePolicyAny {
		cfg.Subscription.CoveragePolicy = CoveragePolicyRadius
	}

	if cfg.Property == nil {
		cfg.Property = &PropertyConfig{}
	}
	if cfg.Property.DefaultCategory == "" {
		cfg.Property.DefaultCategory = defaultCategory
	}
	if cfg.Property.NearbyRadius <= 0 {
		cfg.Property.NearbyRadius = defaultCoverageRadius
	}
	if cfg.Property.ListingTTL <= 0 {
		cfg.Property.ListingTTL = defaultListingTTL
	}

	if cfg.Payment == nil {
		cfg.Payment = &PaymentConfig{}
	}
	if cfg.Payment.Provider == "" {
		cfg.Payment.Provider = "simulated"
	}

	if cfg.Regions == nil {
		cfg.Regions = &RegionsConfig{}
	}
	if cfg.Regions.Country == "" {
		cfg.Regions.Country = defaultCountry
	}
	if cfg.Regions.Timeout <= 0 {
		cfg.Regions.Timeout = defaultUpstreamTimeout
	}

	if cfg.Banners == nil {
		cfg.Banners = &BannersConfig{}
	}
	if cfg.Banners.Timeout <= 0 {
		cfg.Banners.Timeout = defaultUpstreamTimeout
	}
	if cfg.Banners.CacheTTL <= 0 {
		cfg.Banners.CacheTTL = defaultBannerTTL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}

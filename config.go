package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	awspkg "github.com/YeshwantRaoB/organizon-web/pkg/aws"

	"go.uber.org/zap"
)

const (
	IdentityModeFirebase = "firebase"
	IdentityModeJWT      = "jwt"
)

// Config holds all environment variables for the storefront API.
type Config struct {
	Port   string
	AppEnv string

	MongoURI string
	MongoDB  string
	RedisURL string

	ProductCacheTTL time.Duration

	IdentityMode string
	AdminEmails  string
	JWTSecret    string

	FirebaseProjectID       string
	FirebaseClientEmail     string
	FirebasePrivateKey      string
	FirebaseCredentialsJSON string

	ImageBucket        string
	ImagePrefix        string
	ImagePublicBaseURL string

	AllowedOrigins []string

	CloudWatchEnabled   bool
	CloudWatchNamespace string
	CloudWatchLogGroup  string

	StrictOrderTransitions bool
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadConfig reads the environment and validates it. With
// AWS_USE_SECRETS=true the secret named by AWS_SECRET_NAME (a JSON object of
// env-style keys) overrides the sensitive values; lookup failures fall back
// to the environment.
func LoadConfig(ctx context.Context) (*Config, error) {
	cfg := &Config{
		Port:                    getEnv("PORT", "8080"),
		AppEnv:                  getEnv("APP_ENV", "development"),
		MongoURI:                os.Getenv("MONGO_URI"),
		MongoDB:                 getEnv("MONGO_DB", "organizon"),
		RedisURL:                os.Getenv("REDIS_URL"),
		IdentityMode:            getEnv("IDENTITY_MODE", IdentityModeFirebase),
		AdminEmails:             os.Getenv("ADMIN_EMAILS"),
		JWTSecret:               os.Getenv("JWT_SECRET"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseClientEmail:     os.Getenv("FIREBASE_CLIENT_EMAIL"),
		FirebasePrivateKey:      os.Getenv("FIREBASE_PRIVATE_KEY"),
		FirebaseCredentialsJSON: os.Getenv("FIREBASE_CREDENTIALS_JSON"),
		ImageBucket:             os.Getenv("IMAGE_BUCKET"),
		ImagePrefix:             getEnv("IMAGE_PREFIX", "products/"),
		ImagePublicBaseURL:      os.Getenv("IMAGE_PUBLIC_BASE_URL"),
		CloudWatchEnabled:       os.Getenv("CLOUDWATCH_ENABLED") == "true",
		CloudWatchNamespace:     getEnv("CLOUDWATCH_NAMESPACE", "Organizon"),
		CloudWatchLogGroup:      os.Getenv("CLOUDWATCH_LOG_GROUP"),
		StrictOrderTransitions:  os.Getenv("ORDER_STRICT_TRANSITIONS") == "true",
	}

	ttl, err := time.ParseDuration(getEnv("PRODUCT_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid PRODUCT_CACHE_TTL: %w", err)
	}
	cfg.ProductCacheTTL = ttl

	for _, o := range strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}

	if os.Getenv("AWS_USE_SECRETS") == "true" {
		cfg.applySecrets(ctx, getEnv("AWS_SECRET_NAME", "organizon/api"))
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applySecrets(ctx context.Context, name string) {
	awsCfg, err := awspkg.LoadAWSConfig(ctx, "")
	if err != nil {
		zap.L().Warn("AWS config unavailable, using environment secrets", zap.Error(err))
		return
	}
	secrets, err := awspkg.NewSecretsClient(awsCfg).GetSecretMap(ctx, name)
	if err != nil {
		zap.L().Warn("Secrets Manager lookup failed, using environment secrets",
			zap.String("secret", name), zap.Error(err))
		return
	}

	override := func(dst *string, key string) {
		if v := secrets[key]; v != "" {
			*dst = v
		}
	}
	override(&cfg.MongoURI, "MONGO_URI")
	override(&cfg.JWTSecret, "JWT_SECRET")
	override(&cfg.FirebaseProjectID, "FIREBASE_PROJECT_ID")
	override(&cfg.FirebaseClientEmail, "FIREBASE_CLIENT_EMAIL")
	override(&cfg.FirebasePrivateKey, "FIREBASE_PRIVATE_KEY")
	override(&cfg.FirebaseCredentialsJSON, "FIREBASE_CREDENTIALS_JSON")
}

func (cfg *Config) validate() error {
	if cfg.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	switch cfg.IdentityMode {
	case IdentityModeJWT:
		if cfg.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required when IDENTITY_MODE=jwt")
		}
	case IdentityModeFirebase:
		if cfg.FirebaseCredentialsJSON == "" &&
			(cfg.FirebaseProjectID == "" || cfg.FirebaseClientEmail == "" || cfg.FirebasePrivateKey == "") {
			return fmt.Errorf("firebase service account is required when IDENTITY_MODE=firebase")
		}
	default:
		return fmt.Errorf("unknown IDENTITY_MODE %q", cfg.IdentityMode)
	}
	return nil
}

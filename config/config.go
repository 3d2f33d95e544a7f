package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the project config values
type Config struct {
	URL            string
	DatabaseName   string
	BaseURL        string
	Port           string
	AppEnv         string
	RequestTimeout time.Duration

	SendGridAPIKey string
	MailFrom       string
	MailFromName   string

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadPreset string
}

const defaultRequestTimeout = 30 * time.Second

// New sets up all config related services
func New() *Config {
	// a missing .env is fine, the environment wins anyway
	_ = godotenv.Load()

	appEnv := os.Getenv("APP_ENV")

	//setup zap logger and replace default logger
	logger, err := setLogger(appEnv)
	if err != nil {
		logger = zap.NewExample()
	}
	defer logger.Sync()
	_ = zap.ReplaceGlobals(logger)

	return &Config{
		URL:                    os.Getenv("DB_URI"),
		DatabaseName:           os.Getenv("DB_NAME"),
		BaseURL:                os.Getenv("BASE_URL"),
		Port:                   getenv("PORT", "8080"),
		AppEnv:                 appEnv,
		RequestTimeout:         durationEnv("REQUEST_TIMEOUT", defaultRequestTimeout),
		SendGridAPIKey:         os.Getenv("SENDGRID_API_KEY"),
		MailFrom:               getenv("MAIL_FROM", "no-reply@hospital-api.local"),
		MailFromName:           getenv("MAIL_FROM_NAME", "Hospital Admin"),
		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryUploadPreset: os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
	}
}

func setLogger(env string) (*zap.Logger, error) {
	switch env {
	case "local", "development":
		return zap.NewDevelopment()
	case "production":
		return zap.NewProduction()
	default:
		return zap.NewExample(), nil
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		zap.S().Warnw("ignoring invalid duration", "key", key, "value", v)
		return fallback
	}
	return d
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	b, _ := json.Marshal(map[string]string{"response": fmt.Sprintf("%s, %v", message, err)})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}

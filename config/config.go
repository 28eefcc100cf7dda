package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Google Cloud
	ProjectID string
	Location  string

	// Server
	Port  string
	Debug bool

	// Gemini Model
	GeminiModel           string
	SummaryTimeoutSeconds int

	// Matching
	MatchWorkers             int
	InterviewScoreThreshold  int
	MatchConfidenceThreshold int

	// Authentication
	JWTSecret      string
	JWTExpiryHours int
	GoogleClientID string

	// Cloud Storage
	DocumentBucketName string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Google Cloud
		ProjectID: getEnv("PROJECT_ID", ""),
		Location:  getEnv("LOCATION", "us-central1"),

		// Server
		Port:  getEnv("PORT", "8080"),
		Debug: getEnvBool("DEBUG", false),

		// Gemini Model
		GeminiModel:           getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		SummaryTimeoutSeconds: getEnvInt("SUMMARY_TIMEOUT_SECONDS", 20),

		// Matching
		MatchWorkers:             getEnvInt("MATCH_WORKERS", 5),
		InterviewScoreThreshold:  getEnvInt("INTERVIEW_SCORE_THRESHOLD", 70),
		MatchConfidenceThreshold: getEnvInt("MATCH_CONFIDENCE_THRESHOLD", 40),

		// Authentication
		JWTSecret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),

		// Cloud Storage
		DocumentBucketName: getEnv("DOCUMENT_BUCKET_NAME", ""),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	// ProjectID is required for Firestore and Vertex AI
	if c.ProjectID == "" {
		return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for Firestore and Vertex AI"}
	}

	if c.MatchWorkers < 1 {
		return &ConfigError{Field: "MATCH_WORKERS", Message: "MATCH_WORKERS must be at least 1"}
	}
	if c.InterviewScoreThreshold < 0 || c.InterviewScoreThreshold > 100 {
		return &ConfigError{Field: "INTERVIEW_SCORE_THRESHOLD", Message: "INTERVIEW_SCORE_THRESHOLD must be between 0 and 100"}
	}
	if c.MatchConfidenceThreshold < 0 || c.MatchConfidenceThreshold > 100 {
		return &ConfigError{Field: "MATCH_CONFIDENCE_THRESHOLD", Message: "MATCH_CONFIDENCE_THRESHOLD must be between 0 and 100"}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

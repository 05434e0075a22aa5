package cmd

import "time"

// Config carries every environment-supplied setting the application needs.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string
	JWTTTL    time.Duration

	KafkaHost             string
	KafkaOrderEventsTopic string

	RedisHost    string
	MenuCacheTTL time.Duration

	// EmailImpl selects the email sender: FAKE logs messages, SMTP sends them.
	EmailImpl    string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string

	// PhotoStorageDir is the local directory product photo files are kept in.
	PhotoStorageDir string

	// OrderExpirationTTL is how long an order may stay in CREATED status
	// before the expiration job cancels it.
	OrderExpirationTTL time.Duration

	// TrackingBaseURL is the public URL prefix encoded into order QR codes.
	TrackingBaseURL string
}

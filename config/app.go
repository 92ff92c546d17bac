package config

import "time"

// Config is the process-wide configuration, assembled once at startup from the
// environment and passed to the components that need it. Request handling
// never reads the environment directly.
type Config struct {
	Port        string
	FrontendURL string

	// Admin credential and token signing. Exactly one admin identity exists;
	// it is configuration, not an account row.
	JWTSecret         string
	TokenTTL          time.Duration
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
	AdminEmail        string

	// Relational store (projects, skills)
	DBDriver    string
	DatabaseURL string
	SeedOnStart bool

	// Document store (contact messages) and notification queue
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	QueueEnabled  bool

	// Outbound mail
	ResendAPIKey    string
	ResendFromEmail string

	// Transport tuning
	RateLimitRPS   float64
	RateLimitBurst int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

// Load builds a Config from an environment snapshot produced by New.
func Load(c map[string]string) Config {
	return Config{
		Port:        GetString(c, "PORT", "5000"),
		FrontendURL: GetString(c, "FRONTEND_URL", "http://localhost:3000"),

		JWTSecret:         GetString(c, "JWT_SECRET", ""),
		TokenTTL:          time.Duration(GetInt(c, "TOKEN_TTL_HOURS", 24)) * time.Hour,
		AdminUsername:     GetString(c, "ADMIN_USERNAME", "admin"),
		AdminPassword:     GetString(c, "ADMIN_PASSWORD", ""),
		AdminPasswordHash: GetString(c, "ADMIN_PASSWORD_HASH", ""),
		AdminEmail:        GetString(c, "ADMIN_EMAIL", ""),

		DBDriver:    GetString(c, "DB_DRIVER", "postgres"),
		DatabaseURL: GetString(c, "DATABASE_URL", ""),
		SeedOnStart: GetBool(c, "SEED_ON_START", false),

		RedisAddr:     GetString(c, "REDIS_ADDR", "localhost:6379"),
		RedisPassword: GetString(c, "REDIS_PASSWORD", ""),
		RedisDB:       GetInt(c, "REDIS_DB", 0),
		QueueEnabled:  GetBool(c, "QUEUE_ENABLED", true),

		ResendAPIKey:    GetString(c, "RESEND_API_KEY", ""),
		ResendFromEmail: GetString(c, "RESEND_FROM_EMAIL", ""),

		RateLimitRPS:   GetFloat(c, "RATE_LIMIT_RPS", 10),
		RateLimitBurst: GetInt(c, "RATE_LIMIT_BURST", 30),
		ReadTimeout:    time.Duration(GetInt(c, "READ_TIMEOUT_SECONDS", 30)) * time.Second,
		WriteTimeout:   time.Duration(GetInt(c, "WRITE_TIMEOUT_SECONDS", 30)) * time.Second,
		IdleTimeout:    time.Duration(GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second,
	}
}

package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr     string
	GinMode     string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBName      string
	JWTSecret   string
	CORSOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	origins := []string{}
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:9002",
			"http://127.0.0.1:9002",
		}
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:      envOr("DB_USER", "root"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBHost:      envOr("DB_HOST", "127.0.0.1:3306"),
		DBName:      envOr("DB_NAME", "arewa_ride"),
		JWTSecret:   envOr("JWT_SECRET", "super-secret-key-change-me"),
		CORSOrigins: origins,
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

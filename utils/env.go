package utils

import (
	"os"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	godotenv.Load()
}

func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Built-in administrator credential pair. Overridable via env, but there is
// always exactly one admin.
func AdminEmail() string {
	return Getenv("ADMIN_EMAIL", "admin@otttrusted.in")
}

func AdminPassword() string {
	return Getenv("ADMIN_PASSWORD", "9113401017")
}

package config

import "os"

// DefaultPort is the listen port used when PORT is unset.
const DefaultPort = "3000"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ServeAddress returns the default SSH listen address. A PORT variable
// (as set by most hosting platforms) wins over the built-in port.
func ServeAddress() string {
	return ":" + GetEnv("PORT", DefaultPort)
}

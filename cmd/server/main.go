package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/devansharora/tunedeck/pkg/tunedeck"
)

var (
	port           int
	allowedOrigins string
	followSymlinks bool
)

func init() {
	flag.IntVar(&port, "port", 8080, "HTTP server port")
	flag.StringVar(&allowedOrigins, "origins", getEnvOrDefault("TUNEDECK_ORIGINS", "*"), "Comma-separated list of allowed CORS origins (use * for all)")
	flag.BoolVar(&followSymlinks, "follow-symlinks", true, "Follow symbolic links while scanning")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	flag.Parse()

	// Parse allowed origins
	var origins []string
	if allowedOrigins == "*" {
		origins = []string{"*"}
	} else {
		origins = strings.Split(allowedOrigins, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
	}

	service := tunedeck.NewService(
		tunedeck.WithFollowSymlinks(followSymlinks),
	)

	config := &ServerConfig{
		Port:           port,
		AllowedOrigins: origins,
	}

	server := NewServer(service, config)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

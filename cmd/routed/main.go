// Command routed serves the connector router over HTTP.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"orthoroute/api"
	"orthoroute/routing"
)

type config struct {
	port         string
	readTimeout  int
	writeTimeout int
}

func loadConfig() config {
	cfg := config{
		port:         getEnv("PORT", "8080"),
		readTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		writeTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
	}
	flag.StringVar(&cfg.port, "port", cfg.port, "port to listen on")
	flag.Parse()
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func main() {
	cfg := loadConfig()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.readTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.writeTimeout) * time.Second,
		AppName:      "orthoroute",
	})

	app.Use(recover.New())
	app.Use(api.RequestID())

	api.NewServer(routing.NewRouter()).Register(app)

	addr := fmt.Sprintf(":%s", cfg.port)
	log.Printf("[ROUTED] listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("[ROUTED] server failed: %v", err)
	}
}

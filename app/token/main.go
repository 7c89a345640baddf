package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"playNext/pkg/config"
	"playNext/pkg/utils"
)

// Mints an admin JWT for the operational endpoints.
func main() {
	subject := flag.String("subject", "ops", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	utils.InitJWT(cfg.JWT.SecretKey)

	token, err := utils.GenerateJWT(*subject, "admin", *ttl)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(token)
}

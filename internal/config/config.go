package config

import (
	"log"
	"os"

	"github.com/spf13/cast"
)

type Config struct {
	Port         string
	DBDSN        string
	LogFile      string
	LogMaxSizeMB int

	// Storefront identity used in the outbound WhatsApp message.
	StoreName   string
	StorePhone  string
	ChatBaseURL string

	// e-Mola account the shopper transfers to before confirming.
	EmolaNumber string
	EmolaName   string
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	cfg := Config{
		Port:         env("PORT", "8080"),
		DBDSN:        env("DB_DSN", "dropsmob.db"), // sqlite file in project root
		LogFile:      env("LOG_FILE", "./dropsmob.log"),
		LogMaxSizeMB: cast.ToInt(env("LOG_MAX_SIZE_MB", "64")),
		StoreName:    env("STORE_NAME", "DropsMob"),
		StorePhone:   env("STORE_PHONE", "258840000000"),
		ChatBaseURL:  env("CHAT_BASE_URL", "https://wa.me/"),
		EmolaNumber:  env("EMOLA_NUMBER", "860000000"),
		EmolaName:    env("EMOLA_NAME", "DropsMob Lda"),
	}
	if cfg.LogMaxSizeMB <= 0 {
		cfg.LogMaxSizeMB = 64
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s STORE_PHONE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.StorePhone)
	return cfg
}

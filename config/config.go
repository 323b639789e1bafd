package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv 读取 .env（容器里没有也不报错）
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			log.Printf("failed to load .env: %v", err)
		}
	}
}

package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	// SMS gateway (absentee notifications)
	SMSBaseURL  string
	SMSUsername string
	SMSPassword string
	SMSSenderID string
	SMSRoute    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	}

	SMSBaseURL = GetEnv("SMS_BASE_URL", "http://sms.lyvee.com/sendsms")
	SMSUsername = GetEnv("SMS_USERNAME")
	SMSPassword = GetEnv("SMS_PASSWORD")
	SMSSenderID = GetEnv("SMS_SENDER_ID", "ThreeG")
	SMSRoute = GetEnv("SMS_ROUTE", "T")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

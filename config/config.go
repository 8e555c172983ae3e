package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config trả về giá trị biến môi trường, nạp file .env ở lần gọi đầu tiên
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("Không tìm thấy file .env, dùng biến môi trường hệ thống")
		}
	})
	return os.Getenv(key)
}

func String(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}

func Int(key string, def int) int {
	v := Config(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("%s=%q không phải số, dùng mặc định %d", key, v, def)
		return def
	}
	return n
}

func Duration(key string, def time.Duration) time.Duration {
	v := Config(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("%s=%q không phải duration, dùng mặc định %s", key, v, def)
		return def
	}
	return d
}

type App struct {
	Port             string
	APIURL           string
	CORSOrigins      string
	TokenStore       string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	LogLevel         string
	HTTPTimeout      time.Duration
	ScanFPS          int
	OrderSessionTTL  time.Duration
	LoginSessionTTL  time.Duration
	StatisticRefresh string
}

func Load() App {
	return App{
		Port:             String("APP_PORT", "8002"),
		APIURL:           String("API_URL", "http://localhost:8080/api"),
		CORSOrigins:      String("CORS_ORIGINS", "http://localhost:5173"),
		TokenStore:       String("TOKEN_STORE", "memory"),
		RedisAddr:        String("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    Config("REDIS_PASSWORD"),
		RedisDB:          Int("REDIS_DB", 0),
		LogLevel:         String("LOG_LEVEL", "info"),
		HTTPTimeout:      Duration("HTTP_TIMEOUT", 15*time.Second),
		ScanFPS:          Int("SCAN_FPS", 30),
		OrderSessionTTL:  Duration("ORDER_SESSION_TTL", 30*time.Minute),
		LoginSessionTTL:  Duration("LOGIN_SESSION_TTL", 12*time.Hour),
		StatisticRefresh: String("STATISTIC_REFRESH_CRON", "*/5 * * * *"),
	}
}

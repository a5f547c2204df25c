package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config รวมค่าตั้งค่าทั้งหมดของ service ที่อ่านจาก .env / environment
type Config struct {
	AppURI         string
	AppEnv         string
	AllowedOrigins string

	StoreDriver        string // mongo | firestore
	MongoURI           string
	MongoDB            string
	FirestoreProjectID string
	GoogleCredentials  string

	RedisURI       string
	ReportCacheTTL time.Duration
	ExportTTL      time.Duration

	JWTSecret string

	AttendanceTZ      string
	SF2TemplatePath   string
	SF2RenderTimeout  time.Duration
	SF2Overflow       string // error | truncate
	RankingTieBreak   string // stable | name | studentId
	WorkerConcurrency int
}

// Load reads .env (if present) then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	return Config{
		AppURI:         getenv("APP_URI", "8888"),
		AppEnv:         getenv("APP_ENV", "development"),
		AllowedOrigins: getenv("ALLOWED_ORIGINS", "*"),

		StoreDriver:        strings.ToLower(getenv("STORE_DRIVER", "mongo")),
		MongoURI:           os.Getenv("MONGO_URI"),
		MongoDB:            getenv("MONGO_DB", "AttendanceDB"),
		FirestoreProjectID: os.Getenv("FIRESTORE_PROJECT_ID"),
		GoogleCredentials:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),

		RedisURI:       os.Getenv("REDIS_URI"),
		ReportCacheTTL: getenvDuration("REPORT_CACHE_TTL", 10*time.Minute),
		ExportTTL:      getenvDuration("EXPORT_TTL", time.Hour),

		JWTSecret: os.Getenv("JWT_SECRET"),

		AttendanceTZ:      getenv("ATTENDANCE_TZ", "Asia/Manila"),
		SF2TemplatePath:   getenv("SF2_TEMPLATE_PATH", "templates/SF2.xlsx"),
		SF2RenderTimeout:  getenvDuration("SF2_RENDER_TIMEOUT", 30*time.Second),
		SF2Overflow:       strings.ToLower(getenv("SF2_OVERFLOW", "error")),
		RankingTieBreak:   getenv("RANKING_TIE_BREAK", "stable"),
		WorkerConcurrency: getenvInt("WORKER_CONCURRENCY", 4),
	}
}

// Location returns the attendance time zone, falling back to UTC when the
// configured name is unknown to the host's tz database.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.AttendanceTZ)
	if err != nil {
		log.Printf("⚠️ Unknown ATTENDANCE_TZ %q, using UTC", c.AttendanceTZ)
		return time.UTC
	}
	return loc
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	if val := os.Getenv(key + "_SECONDS"); val != "" {
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

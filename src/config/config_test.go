package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_URI", "")
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("SF2_RENDER_TIMEOUT", "")
	t.Setenv("SF2_OVERFLOW", "")
	t.Setenv("ATTENDANCE_TZ", "")

	cfg := Load()

	assert.Equal(t, "8888", cfg.AppURI)
	assert.Equal(t, "mongo", cfg.StoreDriver)
	assert.Equal(t, 30*time.Second, cfg.SF2RenderTimeout)
	assert.Equal(t, "error", cfg.SF2Overflow)
	assert.Equal(t, "Asia/Manila", cfg.AttendanceTZ)
	assert.Equal(t, "templates/SF2.xlsx", cfg.SF2TemplatePath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Firestore")
	t.Setenv("SF2_RENDER_TIMEOUT", "")
	t.Setenv("SF2_RENDER_TIMEOUT_SECONDS", "5")
	t.Setenv("WORKER_CONCURRENCY", "9")
	t.Setenv("SF2_OVERFLOW", "TRUNCATE")

	cfg := Load()

	assert.Equal(t, "firestore", cfg.StoreDriver)
	assert.Equal(t, 5*time.Second, cfg.SF2RenderTimeout)
	assert.Equal(t, 9, cfg.WorkerConcurrency)
	assert.Equal(t, "truncate", cfg.SF2Overflow)
}

func TestLocationFallsBackToUTC(t *testing.T) {
	cfg := Config{AttendanceTZ: "Not/AZone"}
	assert.Equal(t, time.UTC, cfg.Location())
}

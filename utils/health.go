package utils

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis            bool      `json:"redis"`
	AppointmentStore bool      `json:"appointmentStore"`
	DoctorDirectory  bool      `json:"doctorDirectory"`
	CheckedAt        time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(redisClient *redis.Client, storeURL, directoryURL string) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		probe := &http.Client{Timeout: 5 * time.Second}
		ctx := context.Background()

		for range ticker.C {
			redisHealthy := redisClient.Ping(ctx).Err() == nil

			mu.Lock()
			currentHealth = HealthStatus{
				Redis:            redisHealthy,
				AppointmentStore: probeUpstream(probe, storeURL),
				DoctorDirectory:  probeUpstream(probe, directoryURL),
				CheckedAt:        time.Now(),
			}
			mu.Unlock()
		}
	}()
}

func probeUpstream(client *http.Client, baseURL string) bool {
	if baseURL == "" {
		return false
	}
	req, err := http.NewRequest(http.MethodHead, baseURL+"/health", nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}

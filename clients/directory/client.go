// Package directory is the REST client for the external Doctor Directory.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"medibook/models"
	"medibook/utils"

	"go.uber.org/zap"
)

// Client fetches clinic rosters. Same transport rules as the appointment
// store client: fixed timeout, no retry. Specialty fields are normalized at
// decode time by models.SpecialtyList.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListByClinic(ctx context.Context, clinicID string) ([]models.DoctorSummary, error) {
	path := fmt.Sprintf("/clinics/%s/doctors", url.PathEscape(clinicID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("doctor directory: failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		utils.GetLogger().Error("doctor directory call failed",
			zap.String("clinicID", clinicID), zap.Error(err))
		return nil, fmt.Errorf("doctor directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("doctor directory: listing clinic %s returned %d: %s",
			clinicID, resp.StatusCode, snippet)
	}

	var doctors []models.DoctorSummary
	if err := json.NewDecoder(resp.Body).Decode(&doctors); err != nil {
		return nil, fmt.Errorf("doctor directory: failed to decode roster: %w", err)
	}
	return doctors, nil
}

// Package appointments is the REST client for the external Appointment Store.
package appointments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"medibook/models"
	"medibook/services/booking"
	"medibook/utils"

	"go.uber.org/zap"
)

// Client talks to the Appointment Store over HTTP. Every call is bounded by
// the client timeout; there is no automatic retry, and an issued request
// cannot be recalled. Callers treat timeout or server error as a terminal
// failure for that attempt.
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

// Create books a new appointment. The client-generated appointment id is also
// sent as the Idempotency-Key header so a retried submission after a dropped
// response does not double-book.
func (c *Client) Create(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	var created models.Appointment
	headers := map[string]string{"Idempotency-Key": req.AppointmentID}
	if err := c.do(ctx, http.MethodPost, "/appointments", headers, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus, reason string) error {
	payload := map[string]any{"status": int(status)}
	if reason != "" {
		payload["cancellation_reason"] = reason
	}
	path := fmt.Sprintf("/appointments/%s/status", url.PathEscape(id))
	return c.do(ctx, http.MethodPatch, path, nil, payload, nil)
}

// Reschedule applies new date, time and status as one operation. The store
// rejects the call with 409 when the carried version is stale.
func (c *Client) Reschedule(ctx context.Context, req models.RescheduleRequest) error {
	path := fmt.Sprintf("/appointments/%s/reschedule", url.PathEscape(req.AppointmentID))
	return c.do(ctx, http.MethodPost, path, nil, req, nil)
}

func (c *Client) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	query := url.Values{}
	if filter.PatientID != "" {
		query.Set("patient_id", filter.PatientID)
	}
	if filter.ClinicID != "" {
		query.Set("clinic_id", filter.ClinicID)
	}
	path := "/appointments"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var appointments []models.Appointment
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *Client) Get(ctx context.Context, id string) (*models.Appointment, error) {
	var appt models.Appointment
	path := fmt.Sprintf("/appointments/%s", url.PathEscape(id))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (c *Client) do(ctx context.Context, method, path string, headers map[string]string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("appointment store: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("appointment store: failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		utils.GetLogger().Error("appointment store call failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("appointment store: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("appointment store: %s %s: %w", method, path, booking.ErrNotFound)
	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("appointment store: %s %s: %w", method, path, booking.ErrVersionConflict)
	case resp.StatusCode >= http.StatusBadRequest:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("appointment store: %s %s returned %d: %s", method, path, resp.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("appointment store: failed to decode response: %w", err)
	}
	return nil
}

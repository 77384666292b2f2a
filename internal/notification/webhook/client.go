// Package webhook delivers notification events to an external HTTP endpoint.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Delivery is the webhook request body.
type Delivery struct {
	EventID     string          `json:"event_id"`
	Type        string          `json:"type"`
	RecipientID string          `json:"recipient_id"`
	OccurredAt  string          `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload"`
}

// eventFields parses only the fields needed for the delivery envelope from a
// notification event JSON (a Kafka message value).
type eventFields struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	RecipientID string `json:"recipientId"`
	CreatedAt   string `json:"createdAt"` // RFC3339
}

// DeliverEventJSON wraps the raw event JSON in a delivery envelope and posts
// it to the webhook URL. If parsing fails, the raw payload is still delivered
// with the current time and empty routing fields.
func DeliverEventJSON(ctx context.Context, url string, rawJSON []byte) error {
	payload := json.RawMessage(rawJSON)
	if !json.Valid(rawJSON) {
		quoted, err := json.Marshal(string(rawJSON))
		if err != nil {
			return err
		}
		payload = quoted
	}
	d := Delivery{
		OccurredAt: time.Now().UTC().Format(time.RFC3339Nano),
		Payload:    payload,
	}
	var fields eventFields
	if err := json.Unmarshal(rawJSON, &fields); err == nil {
		d.EventID = fields.ID
		d.Type = fields.Type
		d.RecipientID = fields.RecipientID
		if fields.CreatedAt != "" {
			d.OccurredAt = fields.CreatedAt
		}
	}
	return Deliver(ctx, url, d)
}

// Deliver posts a single delivery to the webhook URL.
// Returns an error if the HTTP request fails or the endpoint returns non-2xx.
func Deliver(ctx context.Context, url string, d Delivery) error {
	if url == "" {
		return fmt.Errorf("webhook: URL is empty")
	}
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook: delivery returned %s", resp.Status)
	}
	return nil
}

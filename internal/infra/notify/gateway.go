// Package notify delivers user-facing messages through the chat gateway
// webhook. The engine itself never talks to end users directly.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"rentloop/internal/pkg/config"
	"rentloop/internal/pkg/errs"
)

type GatewayNotifier struct {
	client *http.Client
	url    string
	token  string
}

func NewGatewayNotifier(cfg config.GatewayConfig) *GatewayNotifier {
	return &GatewayNotifier{
		client: &http.Client{Timeout: cfg.Timeout},
		url:    cfg.NotifyURL,
		token:  cfg.Token,
	}
}

type notifyPayload struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

func (n *GatewayNotifier) Notify(ctx context.Context, userID int64, text string) error {
	body, err := json.Marshal(notifyPayload{UserID: userID, Text: text})
	if err != nil {
		return errs.Wrap(err, "failed to encode notify payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build notify request")
	}
	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return errs.Mark(err, errs.ErrDeliveryFailed)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Mark(errs.New(fmt.Sprintf("gateway returned status %d", resp.StatusCode)), errs.ErrDeliveryFailed)
	}
	return nil
}

package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const sendTimeout = 10 * time.Second

// GatewayError é devolvido quando o UltraMsg recusa a mensagem.
type GatewayError struct {
	Status int
	Body   string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("ultramsg: status %d: %s", e.Status, e.Body)
}

type UltraMsg struct {
	endpoint string
	token    string
	client   *http.Client
}

// NewUltraMsg monta o endpoint <api_url>/messages/chat. Se a URL não trouxer
// a instância, ela é acrescentada como /instance<id>.
func NewUltraMsg(apiURL, instanceID, token string) *UltraMsg {
	base := strings.TrimRight(apiURL, "/")
	if instanceID != "" && !strings.Contains(base, instanceID) {
		base += "/instance" + instanceID
	}

	return &UltraMsg{
		endpoint: base + "/messages/chat",
		token:    token,
		client:   &http.Client{Timeout: sendTimeout},
	}
}

type chatRequest struct {
	Token    string `json:"token"`
	To       string `json:"to"`
	Body     string `json:"body"`
	Priority string `json:"priority"`
}

type chatResponse struct {
	Sent  string `json:"sent"`
	Error any    `json:"error"`
}

func (u *UltraMsg) Send(ctx context.Context, msg Message) error {
	priority := msg.Priority
	if priority == "" {
		priority = PriorityNormal
	}

	payload, err := json.Marshal(chatRequest{
		Token:    u.token,
		To:       msg.To,
		Body:     msg.Body,
		Priority: string(priority),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("ultramsg: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode >= 300 {
		return &GatewayError{Status: resp.StatusCode, Body: string(raw)}
	}

	// 200 com {"error": ...} também é recusa
	var body chatResponse
	if json.Unmarshal(raw, &body) == nil && body.Error != nil {
		return &GatewayError{Status: resp.StatusCode, Body: string(raw)}
	}

	return nil
}

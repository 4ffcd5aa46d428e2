// Package whatsappsender delivers outbound text replies through the WhatsApp
// Cloud API.
package whatsappsender

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultGraphAPIBaseURL = "https://graph.facebook.com"
	defaultGraphAPIVersion = "v17.0"

	// Default timeout for send requests
	defaultSendTimeout = 10 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024
)

// ErrMissingCredentials is reported when a send is attempted without an access
// token or phone number id configured. It is detected before any network call.
var ErrMissingCredentials = errors.New("whatsapp access token and phone number id are required")

// SendResult reports the outcome of a single delivery attempt. Exactly one
// attempt is made per inbound message; failures are captured here for logging
// and never retried.
type SendResult struct {
	// OK is true when the provider accepted the message.
	OK bool
	// ProviderStatus is the HTTP status returned by the Graph API, or zero when
	// no call was made.
	ProviderStatus int
	// MessageID is the provider-assigned id of the accepted message, when the
	// response carried one.
	MessageID string
	// Err holds the failure detail when OK is false.
	Err error
}

// Sender sends text messages through the Graph API messages endpoint.
type Sender struct {
	client        *http.Client
	baseURL       string
	apiVersion    string
	accessToken   string
	phoneNumberID string
}

// NewSender creates a new Sender with proper HTTP client configuration.
func NewSender(baseURL, apiVersion, accessToken, phoneNumberID string, client *http.Client) *Sender {
	if baseURL == "" {
		baseURL = defaultGraphAPIBaseURL
	}
	if apiVersion == "" {
		apiVersion = defaultGraphAPIVersion
	}
	if client == nil {
		client = &http.Client{
			Timeout: defaultSendTimeout,
		}
	}
	return &Sender{
		client:        client,
		baseURL:       baseURL,
		apiVersion:    apiVersion,
		accessToken:   accessToken,
		phoneNumberID: phoneNumberID,
	}
}

type textMessagePayload struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// SendText delivers body to the recipient as a plain text message. Missing
// credentials fail fast without a network call.
func (s *Sender) SendText(ctx context.Context, to, body string) SendResult {
	if s.accessToken == "" || s.phoneNumberID == "" {
		return SendResult{Err: ErrMissingCredentials}
	}

	payload, err := json.Marshal(textMessagePayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             textBody{Body: body},
	})
	if err != nil {
		return SendResult{Err: fmt.Errorf("failed to marshal message payload: %w", err)}
	}

	endpoint := fmt.Sprintf("%s/%s/%s/messages", s.baseURL, s.apiVersion, s.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return SendResult{Err: fmt.Errorf("failed to create send request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+s.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return SendResult{Err: fmt.Errorf("failed to POST to graph API: %w", err)}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return SendResult{
			ProviderStatus: resp.StatusCode,
			Err:            fmt.Errorf("graph API returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}

	result := SendResult{OK: true, ProviderStatus: resp.StatusCode}
	var decoded sendResponse
	// The message id is informational; a response we cannot decode does not
	// demote an accepted send.
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err == nil && len(decoded.Messages) > 0 {
		result.MessageID = decoded.Messages[0].ID
	}
	return result
}

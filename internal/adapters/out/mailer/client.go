// Package mailer implements the notification gateway over a hosted
// transactional email HTTP API. The core never sees transport detail: every
// failure surfaces as a DependencyError.
package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"arkdumpster/internal/core/domain/services"
	"arkdumpster/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client sends customer notifications through the email API.
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

// NewClient creates a mail client. The base URL, API key and sender address
// are all required.
func NewClient(baseURL, apiKey, from string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}
	if from == "" {
		return nil, errs.NewValueIsRequiredError("from")
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// message is the wire format the email API accepts. Attachments travel
// base64-encoded inline.
type message struct {
	From        string       `json:"from"`
	To          string       `json:"to"`
	Subject     string       `json:"subject"`
	Template    string       `json:"template"`
	Variables   variables    `json:"variables"`
	Attachments []attachment `json:"attachments,omitempty"`
}

type variables struct {
	CustomerName string `json:"customer_name"`
	OrderNumber  string `json:"order_number"`
	Status       string `json:"status"`
}

type attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
}

// Send delivers the notification. The request is bounded by the client
// timeout on top of the caller's context.
func (c *Client) Send(ctx context.Context, payload services.Payload) error {
	msg := message{
		From:     c.from,
		To:       payload.CustomerEmail,
		Subject:  subjectFor(payload),
		Template: string(payload.Template),
		Variables: variables{
			CustomerName: payload.CustomerName,
			OrderNumber:  payload.OrderNumber,
			Status:       string(payload.Status),
		},
	}

	if a := payload.Attachment; a != nil {
		msg.Attachments = append(msg.Attachments, attachment{
			Filename:    a.Filename,
			ContentType: a.ContentType,
			Content:     base64.StdEncoding.EncodeToString(a.Content),
		})
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errs.NewDependencyErrorWithCause("mailer", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return errs.NewDependencyErrorWithCause("mailer", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewDependencyErrorWithCause("mailer", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errs.NewDependencyErrorWithCause("mailer",
			fmt.Errorf("email api responded with status %d", resp.StatusCode))
	}

	return nil
}

// subjectFor renders the subject line for a notification template.
func subjectFor(payload services.Payload) string {
	switch payload.Template {
	case services.TemplateOnWay:
		return fmt.Sprintf("Your dumpster is on the way - order %s", payload.OrderNumber)
	case services.TemplateDelivered:
		return fmt.Sprintf("Your dumpster has been delivered - order %s", payload.OrderNumber)
	case services.TemplatePickedUp:
		return fmt.Sprintf("Your dumpster pickup is underway - order %s", payload.OrderNumber)
	case services.TemplateCompleted:
		return fmt.Sprintf("Your rental is complete - order %s", payload.OrderNumber)
	case services.TemplateStatusUpdate:
		return fmt.Sprintf("Update on your order %s", payload.OrderNumber)
	}
	return fmt.Sprintf("Update on your order %s", payload.OrderNumber)
}

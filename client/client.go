// Package client fetches calculator results from the APIVerve menstrual cycle endpoint.
package client

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/cyclecalc/models"
)

const (
	DefaultBaseURL = "https://api.apiverve.com/v1/menstrualcycle"
	DefaultTimeout = 30 * time.Second

	apiKeyHeader    = "x-api-key"
	requestIDHeader = "X-Request-ID"
	userAgent       = "cyclecalc-go"
)

var (
	ErrAPIKeyMissing = errors.New("api key is required")
	ErrEmptyResponse = errors.New("response carried no data")
)

// APIError is returned when the API answers with an error status or an error envelope.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d (request %s)", e.StatusCode, e.RequestID)
	}
	return fmt.Sprintf("api error: %s (status %d, request %s)", e.Message, e.StatusCode, e.RequestID)
}

type Client struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	http    *fiber.Client
	logger  *log.Logger
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(client *Client) {
		if baseURL != "" {
			client.baseURL = baseURL
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(client *Client) {
		if timeout > 0 {
			client.timeout = timeout
		}
	}
}

// WithLogger traces each call. Without it the client is silent.
func WithLogger(logger *log.Logger) Option {
	return func(client *Client) {
		client.logger = logger
	}
}

func New(apiKey string, options ...Option) *Client {
	client := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		http:    &fiber.Client{UserAgent: userAgent},
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// Execute validates request and fetches the calculation. Invalid parameters are
// reported before any network traffic. Canceling ctx abandons an in-flight call
// and returns ctx.Err().
func (client *Client) Execute(ctx context.Context, request Request) (*models.CycleCalculatorResponse, error) {
	if client.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return client.fetch(ctx, request.QueryParams())
}

// ExecuteRaw sends params as given, without validation.
func (client *Client) ExecuteRaw(ctx context.Context, params map[string]any) (*models.CycleCalculatorResponse, error) {
	if client.apiKey == "" {
		return nil, ErrAPIKeyMissing
	}
	query := url.Values{}
	for name, value := range params {
		query.Set(name, fmt.Sprint(value))
	}
	return client.fetch(ctx, query)
}

func (client *Client) fetch(ctx context.Context, query url.Values) (*models.CycleCalculatorResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := client.timeout
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, context.DeadlineExceeded
		}
		if remaining < timeout {
			timeout = remaining
		}
	}

	requestID := uuid.NewString()
	agent := client.http.Get(client.baseURL)
	agent.Set(apiKeyHeader, client.apiKey)
	agent.Set(requestIDHeader, requestID)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.QueryString(query.Encode())
	agent.Timeout(timeout)

	started := time.Now()
	done := make(chan agentResult, 1)
	go func() {
		status, body, errs := agent.Bytes()
		done <- agentResult{status: status, body: body, errs: errs}
	}()

	var result agentResult
	select {
	case <-ctx.Done():
		client.logf("GET %s request_id=%s abandoned after %s: %v", client.baseURL, requestID, time.Since(started), ctx.Err())
		return nil, ctx.Err()
	case result = <-done:
	}

	status, body, errs := result.status, result.body, result.errs
	if len(errs) > 0 {
		client.logf("GET %s request_id=%s failed after %s: %v", client.baseURL, requestID, time.Since(started), errs)
		return nil, fmt.Errorf("request %s failed: %w", requestID, errors.Join(errs...))
	}
	client.logf("GET %s request_id=%s status=%d bytes=%d took=%s", client.baseURL, requestID, status, len(body), time.Since(started))

	if status >= fiber.StatusBadRequest {
		return nil, &APIError{StatusCode: status, Message: errorMessage(body), RequestID: requestID}
	}

	envelope, err := models.DecodeEnvelope(body)
	if err != nil {
		return nil, fmt.Errorf("decode response %s: %w", requestID, err)
	}
	if !envelope.OK() {
		return nil, &APIError{StatusCode: status, Message: envelope.Error, RequestID: requestID}
	}
	if envelope.Data == nil {
		return nil, fmt.Errorf("request %s: %w", requestID, ErrEmptyResponse)
	}
	return envelope.Data, nil
}

type agentResult struct {
	status int
	body   []byte
	errs   []error
}

// errorMessage pulls the message out of an error body; bodies that are not an
// envelope yield an empty message.
func errorMessage(body []byte) string {
	envelope, err := models.DecodeEnvelope(body)
	if err != nil {
		return ""
	}
	return envelope.Error
}

func (client *Client) logf(format string, args ...any) {
	if client.logger == nil {
		return
	}
	client.logger.Printf(format, args...)
}

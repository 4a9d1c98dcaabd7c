package emailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SlotBookingService/internal/domain"
)

const maxErrorBodyBytes = 512

// Client клиент для работы с Email Microservice
type Client struct {
	url         string
	httpClient  *http.Client
	maxAttempts int
	backoff     time.Duration
	metrics     MetricsRecorder
	log         Logger
}

// Option настройка клиента
type Option func(*Client)

// WithRetry включает повторные попытки при недоступности сервиса
// maxAttempts - общее число попыток (1 - без повторов), backoff - пауза перед второй попыткой, далее удваивается
func WithRetry(maxAttempts int, backoff time.Duration) Option {
	return func(c *Client) {
		if maxAttempts > 0 {
			c.maxAttempts = maxAttempts
		}
		if backoff >= 0 {
			c.backoff = backoff
		}
	}
}

// WithMetrics подключает сбор метрик отправки
func WithMetrics(m MetricsRecorder) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient создает новый экземпляр клиента Email Microservice
// url - полный адрес эндпоинта (например, http://127.0.0.1:5002/send-email)
// timeout ограничивает каждую попытку
func NewClient(url string, timeout time.Duration, log Logger, opts ...Option) *Client {
	c := &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxAttempts: 1,
		log:         log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send отправляет уведомление
// Успехом считается только 2xx ответ. Повторяются только сетевые ошибки, 429 и 5xx.
func (c *Client) Send(ctx context.Context, notification *domain.Notification) error {
	start := time.Now()
	err := c.send(ctx, notification)

	if c.metrics != nil {
		status := string(domain.NotificationSent)
		if err != nil {
			status = string(domain.NotificationFailed)
		}
		c.metrics.ObserveNotification(status, time.Since(start).Seconds())
	}

	return err
}

func (c *Client) send(ctx context.Context, notification *domain.Notification) error {
	if c.url == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(SendEmailRequest{
		Recipients:  notification.Recipients,
		SubjectLine: notification.Subject,
		Body:        notification.Body,
		IsHTML:      notification.IsHTML,
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	var lastErr error
	delay := c.backoff

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		retryable, err := c.post(ctx, payload)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable || attempt == c.maxAttempts {
			break
		}

		c.log.Warn("EmailService: attempt %d/%d failed, retrying in %s: %v", attempt, c.maxAttempts, delay, err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
		case <-time.After(delay):
		}
		delay *= 2
	}

	return lastErr
}

// post выполняет одну попытку; retryable сообщает, имеет ли смысл повторять
func (c *Client) post(ctx context.Context, payload []byte) (retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return false, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return false, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	retryable = resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
	return retryable, fmt.Errorf("%w: unexpected status code %d: %s", ErrRejected, resp.StatusCode, string(body))
}

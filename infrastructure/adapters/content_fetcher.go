package adapters

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SyedAhtsham/vistavoice-deployment/application/ports/outbound"
)

type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, error)
}

type contentFetcher struct {
	logger outbound.LoggerPort
	client *http.Client
}

func NewContentFetcher(logger outbound.LoggerPort, timeout time.Duration) ContentFetcher {
	return &contentFetcher{
		logger: logger,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "HTTP request failed", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL.String(),
		})
		return nil, err
	}

	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Error(err, "failed to close response body")
		}
	}(res.Body)

	if res.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(res.Body)
		c.logger.ErrorWithFields(nil, "HTTP request returned non-OK status", map[string]interface{}{
			"method":  req.Method,
			"url":     req.URL.String(),
			"status":  res.StatusCode,
			"message": string(payload),
		})
		return nil, fmt.Errorf("HTTP request returned status %d", res.StatusCode)
	}

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "failed to read response body", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL.String(),
		})
		return nil, err
	}

	return payload, nil
}

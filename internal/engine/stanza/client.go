// internal/engine/stanza/client.go
package stanza

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"german-tagger/internal/common/httpclient"
	"german-tagger/internal/common/logger"
	"german-tagger/internal/engine"
	"german-tagger/internal/models"
)

const ProviderName = "stanza"

var (
	ErrLoadFailed     = errors.New("STANZA_LOAD_FAILED")
	ErrAnnotateFailed = errors.New("STANZA_ANNOTATE_FAILED")
)

// Client talks to the Stanza sidecar, the transformer-based backup engine.
type Client struct {
	config *Config
	client *httpclient.Client
	logger logger.Logger
}

func NewClient(config *Config, log logger.Logger) *Client {
	return &Client{
		config: config,
		client: httpclient.NewClient(0),
		logger: log.With(map[string]interface{}{
			"provider": ProviderName,
			"lang":     Language,
		}),
	}
}

func (c *Client) Name() string { return ProviderName }

// Model returns the identifier reported in responses answered by this engine.
func (c *Client) Model() string { return "stanza-" + Language }

func (c *Client) Transformer() bool { return true }

// Load asks the sidecar to download and initialize the German pipeline with
// the fixed processor set. Startup only; failure marks the engine unavailable.
func (c *Client) Load(ctx context.Context) error {
	body, _ := json.Marshal(map[string]interface{}{
		"lang":       Language,
		"processors": Processors,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/load", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrLoadFailed, resp.StatusCode)
	}

	c.logger.Info("Stanza pipeline loaded", nil)
	return nil
}

// Tag annotates text and returns sentences in the unified schema.
func (c *Client) Tag(ctx context.Context, text string, opts models.Options) ([]models.Sentence, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	body, _ := json.Marshal(map[string]interface{}{
		"lang": Language,
		"text": text,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/annotate", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnnotateFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, engine.ErrEngineTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrAnnotateFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrAnnotateFailed, resp.StatusCode)
	}

	var doc document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode error: %v", ErrAnnotateFailed, err)
	}

	return normalize(&doc, opts), nil
}

// internal/engine/spacy/config.go
package spacy

import "time"

type Config struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// internal/engine/stanza/config.go
package stanza

import "time"

// Language and Processors are fixed for this service; only the sidecar
// address and timeout are configurable.
const (
	Language   = "de"
	Processors = "tokenize,pos,lemma,mwt"
)

type Config struct {
	BaseURL string
	Timeout time.Duration
}

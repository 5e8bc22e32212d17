package domain

import (
	"time"

	"github.com/google/uuid"
)

type NetworkFormat string

const (
	NetworkFormatXML  NetworkFormat = "xml"
	NetworkFormatYAML NetworkFormat = "yaml"
)

func ValidNetworkFormat(f string) bool {
	switch NetworkFormat(f) {
	case NetworkFormatXML, NetworkFormatYAML:
		return true
	}
	return false
}

// NetworkRecord is a stored network definition in its source form.
type NetworkRecord struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Format        NetworkFormat `json:"format"`
	Source        string        `json:"source,omitempty"`
	VariableCount int           `json:"variable_count"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Run records one query evaluation against a stored network.
type Run struct {
	ID              uuid.UUID `json:"id"`
	NetworkID       uuid.UUID `json:"network_id"`
	Query           string    `json:"query"`
	Conditional     bool      `json:"conditional"`
	Algorithm       Algorithm `json:"algorithm"`
	Probability     float64   `json:"probability"`
	Additions       int       `json:"additions"`
	Multiplications int       `json:"multiplications"`
	Line            string    `json:"line"`
	Error           string    `json:"error,omitempty"`
	DurationMS      float64   `json:"duration_ms"`
	CreatedAt       time.Time `json:"created_at"`
}

// Failed reports whether the run recorded an error.
func (r *Run) Failed() bool {
	return r.Error != ""
}

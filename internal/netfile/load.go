// Package netfile reads Bayesian network definitions from XML or YAML and
// checks them before they reach the inference engine.
package netfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

// ParseFormat maps a format name or file extension to a network format.
func ParseFormat(s string) (domain.NetworkFormat, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "xml":
		return domain.NetworkFormatXML, nil
	case "yaml", "yml":
		return domain.NetworkFormatYAML, nil
	}
	return "", fmt.Errorf("%w: unsupported format %q", domain.ErrInvalidNetwork, s)
}

// Parse decodes and checks a network definition.
func Parse(format domain.NetworkFormat, r io.Reader) (*domain.Network, error) {
	var (
		vars []*domain.Variable
		err  error
	)
	switch format {
	case domain.NetworkFormatXML:
		vars, err = parseXML(r)
	case domain.NetworkFormatYAML:
		vars, err = parseYAML(r)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", domain.ErrInvalidNetwork, format)
	}
	if err != nil {
		return nil, err
	}

	if err := Check(vars); err != nil {
		return nil, err
	}
	return domain.NewNetwork(vars)
}

// ParseString is Parse over an in-memory definition.
func ParseString(format domain.NetworkFormat, source string) (*domain.Network, error) {
	return Parse(format, strings.NewReader(source))
}

// Load reads the network at path, choosing the format from its extension.
func Load(path string) (*domain.Network, error) {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	net, err := Parse(format, f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return net, nil
}

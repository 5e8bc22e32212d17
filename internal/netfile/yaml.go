package netfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

type yamlDocument struct {
	Variables []*domain.Variable `yaml:"variables"`
}

// parseYAML reads a document of the form
//
//	variables:
//	  - name: Rain
//	    outcomes: [T, F]
//	    cpt: [0.2, 0.8]
func parseYAML(r io.Reader) ([]*domain.Variable, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty yaml document", domain.ErrInvalidNetwork)
		}
		return nil, fmt.Errorf("%w: yaml: %v", domain.ErrInvalidNetwork, err)
	}
	return doc.Variables, nil
}

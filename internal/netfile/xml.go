package netfile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

type xmlVariable struct {
	Name     string   `xml:"NAME"`
	Outcomes []string `xml:"OUTCOME"`
}

type xmlDefinition struct {
	For   string   `xml:"FOR"`
	Given []string `xml:"GIVEN"`
	Table string   `xml:"TABLE"`
}

// parseXML reads VARIABLE and DEFINITION elements wherever they appear in
// the document, so both <NETWORK> and <BIF><NETWORK> layouts are accepted.
func parseXML(r io.Reader) ([]*domain.Variable, error) {
	dec := xml.NewDecoder(r)

	var (
		vars []*domain.Variable
		defs []xmlDefinition
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: xml: %v", domain.ErrInvalidNetwork, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "VARIABLE":
			var xv xmlVariable
			if err := dec.DecodeElement(&xv, &start); err != nil {
				return nil, fmt.Errorf("%w: xml variable: %v", domain.ErrInvalidNetwork, err)
			}
			vars = append(vars, &domain.Variable{
				Name:     strings.TrimSpace(xv.Name),
				Outcomes: trimAll(xv.Outcomes),
			})
		case "DEFINITION":
			var xd xmlDefinition
			if err := dec.DecodeElement(&xd, &start); err != nil {
				return nil, fmt.Errorf("%w: xml definition: %v", domain.ErrInvalidNetwork, err)
			}
			defs = append(defs, xd)
		}
	}

	byName := make(map[string]*domain.Variable, len(vars))
	for _, v := range vars {
		byName[v.Name] = v
	}
	for _, d := range defs {
		name := strings.TrimSpace(d.For)
		v, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: definition for undeclared variable %q", domain.ErrInvalidNetwork, name)
		}
		if v.CPT != nil {
			return nil, fmt.Errorf("%w: variable %q is defined twice", domain.ErrInvalidNetwork, name)
		}
		table, err := parseTable(d.Table)
		if err != nil {
			return nil, fmt.Errorf("%w: table of %q: %v", domain.ErrInvalidNetwork, name, err)
		}
		v.Parents = trimAll(d.Given)
		v.CPT = table
	}
	return vars, nil
}

func parseTable(s string) ([]float64, error) {
	fields := strings.Fields(s)
	table := make([]float64, 0, len(fields))
	for _, f := range fields {
		p, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		table = append(table, p)
	}
	return table, nil
}

func trimAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

package netfile

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YahelOmesi/Variable-Elimination/internal/domain"
)

func TestLoad_XML(t *testing.T) {
	net, err := Load(filepath.Join("testdata", "alarm_net.xml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"B", "E", "A", "J", "M"}, net.Names())
	a, ok := net.Variable("A")
	require.True(t, ok)
	assert.Equal(t, []string{"E", "B"}, a.Parents)
	assert.Equal(t, []string{"T", "F"}, a.Outcomes)
	assert.Equal(t, []float64{0.95, 0.05, 0.29, 0.71, 0.94, 0.06, 0.001, 0.999}, a.CPT)
}

func TestLoad_NestedXML(t *testing.T) {
	net, err := Load(filepath.Join("testdata", "sprinkler.xml"))
	require.NoError(t, err)

	s, ok := net.Variable("Sprinkler")
	require.True(t, ok)
	assert.Equal(t, []string{"Rain"}, s.Parents)
	assert.Equal(t, []float64{0.9, 0.1, 0.1, 0.9}, s.CPT)
}

func TestLoad_YAML(t *testing.T) {
	net, err := Load(filepath.Join("testdata", "weather.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3, net.Len())
	wet, ok := net.Variable("Wet")
	require.True(t, ok)
	assert.Equal(t, []string{"Sky", "Wind"}, wet.Parents)
	assert.Len(t, wet.CPT, 12)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.xml"))
	assert.Error(t, err)

	_, err = Load(filepath.Join("testdata", "network.json"))
	assert.ErrorIs(t, err, domain.ErrInvalidNetwork)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]domain.NetworkFormat{
		"xml":  domain.NetworkFormatXML,
		".XML": domain.NetworkFormatXML,
		"yaml": domain.NetworkFormatYAML,
		".yml": domain.NetworkFormatYAML,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("bif")
	assert.ErrorIs(t, err, domain.ErrInvalidNetwork)
}

func TestParse_InvalidDefinitions(t *testing.T) {
	tests := []struct {
		name   string
		format domain.NetworkFormat
		source string
	}{
		{"broken xml", domain.NetworkFormatXML, `<NETWORK><VARIABLE><NAME>A</NAME>`},
		{"empty network", domain.NetworkFormatXML, `<NETWORK></NETWORK>`},
		{"bad table", domain.NetworkFormatXML, `<NETWORK>
			<VARIABLE><NAME>A</NAME><OUTCOME>T</OUTCOME><OUTCOME>F</OUTCOME></VARIABLE>
			<DEFINITION><FOR>A</FOR><TABLE>0.5 half</TABLE></DEFINITION>
		</NETWORK>`},
		{"undeclared definition", domain.NetworkFormatXML, `<NETWORK>
			<VARIABLE><NAME>A</NAME><OUTCOME>T</OUTCOME></VARIABLE>
			<DEFINITION><FOR>A</FOR><TABLE>1</TABLE></DEFINITION>
			<DEFINITION><FOR>B</FOR><TABLE>1</TABLE></DEFINITION>
		</NETWORK>`},
		{"missing definition", domain.NetworkFormatXML, `<NETWORK>
			<VARIABLE><NAME>A</NAME><OUTCOME>T</OUTCOME></VARIABLE>
		</NETWORK>`},
		{"short cpt", domain.NetworkFormatXML, `<NETWORK>
			<VARIABLE><NAME>A</NAME><OUTCOME>T</OUTCOME><OUTCOME>F</OUTCOME></VARIABLE>
			<VARIABLE><NAME>B</NAME><OUTCOME>T</OUTCOME><OUTCOME>F</OUTCOME></VARIABLE>
			<DEFINITION><FOR>A</FOR><TABLE>0.5 0.5</TABLE></DEFINITION>
			<DEFINITION><FOR>B</FOR><GIVEN>A</GIVEN><TABLE>0.5 0.5</TABLE></DEFINITION>
		</NETWORK>`},
		{"unknown yaml field", domain.NetworkFormatYAML, "variables:\n  - name: A\n    states: [T]\n"},
		{"empty yaml", domain.NetworkFormatYAML, ""},
		{"unknown format", domain.NetworkFormat("json"), "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.format, tt.source)
			if !errors.Is(err, domain.ErrInvalidNetwork) {
				t.Fatalf("expected ErrInvalidNetwork, got %v", err)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	binary := []string{"T", "F"}
	tests := []struct {
		name string
		vars []*domain.Variable
	}{
		{"unnamed", []*domain.Variable{{Outcomes: binary, CPT: []float64{0.5, 0.5}}}},
		{"nil entry", []*domain.Variable{nil}},
		{"duplicate", []*domain.Variable{
			{Name: "A", Outcomes: binary, CPT: []float64{0.5, 0.5}},
			{Name: "A", Outcomes: binary, CPT: []float64{0.5, 0.5}},
		}},
		{"no outcomes", []*domain.Variable{{Name: "A", CPT: []float64{}}}},
		{"repeated outcome", []*domain.Variable{{Name: "A", Outcomes: []string{"T", "T"}, CPT: []float64{0.5, 0.5}}}},
		{"unknown parent", []*domain.Variable{{Name: "A", Parents: []string{"Z"}, Outcomes: binary, CPT: []float64{0.5, 0.5, 0.5, 0.5}}}},
		{"self parent", []*domain.Variable{{Name: "A", Parents: []string{"A"}, Outcomes: binary, CPT: []float64{0.5, 0.5, 0.5, 0.5}}}},
		{"cycle", []*domain.Variable{
			{Name: "A", Parents: []string{"C"}, Outcomes: binary, CPT: []float64{0.5, 0.5, 0.5, 0.5}},
			{Name: "B", Parents: []string{"A"}, Outcomes: binary, CPT: []float64{0.5, 0.5, 0.5, 0.5}},
			{Name: "C", Parents: []string{"B"}, Outcomes: binary, CPT: []float64{0.5, 0.5, 0.5, 0.5}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, Check(tt.vars), domain.ErrInvalidNetwork)
		})
	}
}

func TestTopologicalOrder(t *testing.T) {
	net, err := domain.NewNetwork([]*domain.Variable{
		{Name: "Wet", Parents: []string{"Sky", "Wind"}, Outcomes: []string{"T", "F"}},
		{Name: "Wind", Parents: []string{"Sky"}, Outcomes: []string{"T", "F"}},
		{Name: "Sky", Outcomes: []string{"sun", "rain"}},
	})
	require.NoError(t, err)

	order, err := TopologicalOrder(net)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sky", "Wind", "Wet"}, order)
}

func TestLint(t *testing.T) {
	net, err := domain.NewNetwork([]*domain.Variable{
		{Name: "A", Outcomes: []string{"T", "F"}, CPT: []float64{0.3, 0.7}},
		{Name: "B", Parents: []string{"A"}, Outcomes: []string{"T", "F"}, CPT: []float64{0.9, 0.1, 0.4, 0.5}},
	})
	require.NoError(t, err)

	warnings := Lint(net)
	require.Len(t, warnings, 1)
	assert.Equal(t, "B", warnings[0].Variable)
	assert.Equal(t, 1, warnings[0].Row)
	assert.InDelta(t, 0.9, warnings[0].Sum, 1e-12)
	assert.Contains(t, warnings[0].String(), "row 1")
}

func TestLint_CleanNetwork(t *testing.T) {
	net, err := Load(filepath.Join("testdata", "alarm_net.xml"))
	require.NoError(t, err)
	assert.Empty(t, Lint(net))
}

func TestLint_Tolerance(t *testing.T) {
	net, err := domain.NewNetwork([]*domain.Variable{
		{Name: "Near", Outcomes: []string{"T", "F"}, CPT: []float64{0.3, 0.7 + 5e-7}},
		{Name: "Far", Outcomes: []string{"T", "F"}, CPT: []float64{0.3, 0.7 + 1e-5}},
	})
	require.NoError(t, err)

	warnings := Lint(net)
	require.Len(t, warnings, 1)
	assert.Equal(t, "Far", warnings[0].Variable)
}

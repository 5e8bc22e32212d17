package domain

import (
	"errors"
	"testing"
)

func TestNewNetwork_KeepsDeclarationOrder(t *testing.T) {
	net, err := NewNetwork([]*Variable{
		{Name: "Rain", Outcomes: []string{"T", "F"}, CPT: []float64{0.2, 0.8}},
		{Name: "Sprinkler", Parents: []string{"Rain"}, Outcomes: []string{"T", "F"}, CPT: []float64{0.9, 0.1, 0.1, 0.9}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	names := net.Names()
	if len(names) != 2 || names[0] != "Rain" || names[1] != "Sprinkler" {
		t.Fatalf("unexpected order %v", names)
	}

	v, ok := net.Variable("Sprinkler")
	if !ok {
		t.Fatal("expected Sprinkler to be found")
	}
	if v.OutcomeIndex("F") != 1 || v.OutcomeIndex("X") != -1 {
		t.Error("unexpected outcome positions")
	}
	if !v.HasParent("Rain") {
		t.Error("expected Rain to be a parent")
	}
}

func TestNewNetwork_RejectsDuplicates(t *testing.T) {
	_, err := NewNetwork([]*Variable{
		{Name: "A", Outcomes: []string{"T"}},
		{Name: "A", Outcomes: []string{"F"}},
	})
	if !errors.Is(err, ErrInvalidNetwork) {
		t.Fatalf("expected ErrInvalidNetwork, got %v", err)
	}
}

func TestAssignment(t *testing.T) {
	a := Assignment{"A": "T", "B": "F"}

	t.Run("consistent when shared keys agree", func(t *testing.T) {
		if !a.Consistent(Assignment{"A": "T", "C": "T"}) {
			t.Error("expected consistent")
		}
		if a.Consistent(Assignment{"B": "T"}) {
			t.Error("expected inconsistent")
		}
	})

	t.Run("with does not alias", func(t *testing.T) {
		b := a.With("C", "T")
		b["A"] = "F"
		if a["A"] != "T" || a.Has("C") {
			t.Error("With must return an independent copy")
		}
	})

	t.Run("covers", func(t *testing.T) {
		if !a.Covers([]string{"A", "B"}) || a.Covers([]string{"A", "C"}) {
			t.Error("unexpected Covers result")
		}
	})

	t.Run("string is sorted", func(t *testing.T) {
		if got := (Assignment{"B": "F", "A": "T"}).String(); got != "A=T,B=F" {
			t.Errorf("got %q", got)
		}
	})
}

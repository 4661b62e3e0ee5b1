package generator

import (
	"strings"
	"testing"
)

func TestValidateAnchors(t *testing.T) {
	ok := &Anchors{LeftAnchor: " Cold ", RightAnchor: "Hot", SpectrumLabel: " Temperature "}
	if err := ValidateAnchors(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok.LeftAnchor != "Cold" || ok.SpectrumLabel != "Temperature" {
		t.Fatalf("fields not trimmed: %+v", ok)
	}

	bad := []*Anchors{
		{LeftAnchor: "C", RightAnchor: "Hot", SpectrumLabel: "Temp"},
		{LeftAnchor: strings.Repeat("x", 41), RightAnchor: "Hot", SpectrumLabel: "Temp"},
		{LeftAnchor: "Cold", RightAnchor: " ", SpectrumLabel: "Temp"},
		{LeftAnchor: "Cold", RightAnchor: "Hot", SpectrumLabel: ""},
		{LeftAnchor: "Cold", RightAnchor: "Hot", SpectrumLabel: strings.Repeat("x", 21)},
	}
	for i, a := range bad {
		if err := ValidateAnchors(a); err == nil {
			t.Fatalf("case %d: expected error for %+v", i, a)
		}
	}
}

func TestValidateClue(t *testing.T) {
	clue, err := ValidateClue("  Hot dog  ")
	if err != nil || clue != "Hot dog" {
		t.Fatalf("got %q, %v", clue, err)
	}
	if _, err := ValidateClue("abc"); err == nil {
		t.Fatalf("expected error for short clue")
	}
	if _, err := ValidateClue(strings.Repeat("x", 141)); err == nil {
		t.Fatalf("expected error for long clue")
	}
}

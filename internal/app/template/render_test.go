package template

import (
	"testing"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
)

func TestRenderString(t *testing.T) {
	vars := map[string]string{"DATA_DIR": "/data/cmb", "RELEASE": "R3.00"}

	got, err := RenderString("{{DATA_DIR}}/smica_{{RELEASE}}.fits", vars)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/data/cmb/smica_R3.00.fits" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderStringPassthrough(t *testing.T) {
	got, err := RenderString("maps/smica.fits", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "maps/smica.fits" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderStringErrors(t *testing.T) {
	cases := []string{
		"{{MISSING}}/x.fits",
		"{{unclosed",
		"{{ }}",
	}
	for _, in := range cases {
		if _, err := RenderString(in, map[string]string{}); !domain.IsKind(err, domain.KindInvalidConfig) {
			t.Errorf("RenderString(%q): expected invalid_config, got %v", in, err)
		}
	}
}

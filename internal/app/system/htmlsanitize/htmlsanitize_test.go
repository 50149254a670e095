package htmlsanitize_test

import (
	"testing"

	"github.com/dalemusser/scholarhub/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	if got := htmlsanitize.Sanitize("Covers full tuition fees."); got != "Covers full tuition fees." {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_SafeHTML(t *testing.T) {
	input := "<p><strong>Merit</strong> based</p>"
	if got := htmlsanitize.Sanitize(input); got != input {
		t.Errorf("expected safe HTML preserved, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	input := "<p>Apply now</p><script>alert('xss')</script>"
	if got := htmlsanitize.Sanitize(input); got != "<p>Apply now</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesOnclick(t *testing.T) {
	input := `<button onclick="alert('xss')">Apply</button>`
	if got := htmlsanitize.Sanitize(input); got == input {
		t.Error("expected onclick attribute to be removed")
	}
}

func TestStrings_SanitizesEach(t *testing.T) {
	in := []string{"Aadhaar card", "<script>x</script>Income certificate"}
	out := htmlsanitize.Strings(in)
	if out[0] != "Aadhaar card" {
		t.Errorf("element 0: got %q", out[0])
	}
	if out[1] != "Income certificate" {
		t.Errorf("element 1: got %q", out[1])
	}
}

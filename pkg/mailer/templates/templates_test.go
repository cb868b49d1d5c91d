package templates

import (
	"strings"
	"testing"
)

func TestRenderOtpCode(t *testing.T) {
	subject, text, html, err := Render("otp_code", OtpData{Email: "a@b.com", Code: "123456", ExpiresIn: "10 minutes"})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if subject == "" {
		t.Error("expected a subject")
	}
	if strings.Contains(subject, "\n") {
		t.Errorf("subject must be a single line, got %q", subject)
	}
	if !strings.Contains(text, "123456") {
		t.Error("text body must contain the code")
	}
	if !strings.Contains(html, "123456") {
		t.Error("html body must contain the code")
	}
}

func TestRenderOtpCodeFromJobData(t *testing.T) {
	// queue jobs carry data as a generic map
	data := map[string]any{"Email": "a@b.com", "Code": "654321"}
	_, text, _, err := Render("otp_code", data)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if !strings.Contains(text, "654321") {
		t.Error("text body must contain the code")
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, _, _, err := Render("nope", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

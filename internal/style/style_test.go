package style

import (
	"os"
	"strings"
	"testing"
)

func TestDisabledReturnsPlainText(t *testing.T) {
	// Ensure no env vars interfere
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("ARGSET_NO_COLOR")

	Init(false)

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"Success", Success},
		{"Warning", Warning},
		{"Error", Error},
		{"Info", Info},
		{"Header", Header},
		{"Muted", Muted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "test message"
			output := tt.fn(input)

			if output != input {
				t.Errorf("%s() with disabled styling: got %q, want %q", tt.name, output, input)
			}

			if strings.Contains(output, "\x1b[") {
				t.Errorf("%s() with disabled styling contains ANSI codes: %q", tt.name, output)
			}
		})
	}
}

func TestNoColorEnvDisablesStyling(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	Init(true)

	if Enabled() {
		t.Error("styling should be disabled when NO_COLOR is set")
	}
	if got := Error("boom"); got != "boom" {
		t.Errorf("Error() = %q, want plain text", got)
	}
}

func TestArgsetNoColorEnvDisablesStyling(t *testing.T) {
	t.Setenv("ARGSET_NO_COLOR", "1")

	Init(true)

	if Enabled() {
		t.Error("styling should be disabled when ARGSET_NO_COLOR is set")
	}
}

func TestEnabledStylesContainText(t *testing.T) {
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("ARGSET_NO_COLOR")

	Init(true)
	defer Init(false)

	out := Error("bad input")
	if !strings.Contains(out, "bad input") {
		t.Errorf("styled output %q does not contain original text", out)
	}
}

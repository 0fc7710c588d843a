package domain

import "testing"

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		expect bool
	}{
		{"incomplete", StatusIncomplete, true},
		{"started", StatusStarted, true},
		{"complete", StatusComplete, true},
		{"empty", Status(""), false},
		{"unknown", Status("done"), false},
		{"capitalized", Status("Complete"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsValid(); got != tt.expect {
				t.Errorf("IsValid(%q) = %v, want %v", tt.status, got, tt.expect)
			}
		})
	}
}

func TestStatus_Display(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusIncomplete, "Incomplete"},
		{StatusStarted, "Started"},
		{StatusComplete, "Complete"},
		{Status("weird"), "weird"},
	}

	for _, tt := range tests {
		if got := tt.status.Display(); got != tt.want {
			t.Errorf("Display(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatus_Symbol(t *testing.T) {
	if got := StatusIncomplete.Symbol(); got != " " {
		t.Errorf("incomplete symbol = %q, want %q", got, " ")
	}
	if got := StatusStarted.Symbol(); got != ">" {
		t.Errorf("started symbol = %q, want %q", got, ">")
	}
	if got := StatusComplete.Symbol(); got != "x" {
		t.Errorf("complete symbol = %q, want %q", got, "x")
	}
}

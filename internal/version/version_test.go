package version

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildNumber(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch", date: "2026-01-05", expected: 0},
		{name: "next day", date: "2026-01-06", expected: 1},
		{name: "leap day crossed", date: "2028-03-01", expected: 786},
		{name: "garbage", date: "yesterday", wantError: true},
		{name: "before epoch", date: "2025-12-31", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := BuildDate
			defer func() { BuildDate = old }()
			BuildDate = tt.date

			got, err := BuildNumber()
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got id %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("BuildNumber() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestInfo_DevBuild(t *testing.T) {
	old := BuildDate
	defer func() { BuildDate = old }()
	BuildDate = ""

	if _, err := BuildNumber(); !errors.Is(err, ErrNoBuildDate) {
		t.Errorf("expected ErrNoBuildDate, got %v", err)
	}

	info := Info()
	if info.Calculated || info.Service != Service {
		t.Errorf("unexpected info: %+v", info)
	}
	if !strings.Contains(String(), "dev build") {
		t.Errorf("banner should mark a dev build: %s", String())
	}
}

// File: format_test.go
// Title: Formatter Tests
// Description: Tests for level and format parsing and the text renderings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Stable field ordering checks

package log

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARNING ", LevelWarn, false},
		{"trc", LevelTrace, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Text", FormatText, false},
		{"logfmt", FormatLogfmt, false},
		{"console", FormatConsole, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func testEntry() *Entry {
	e := NewEntry(LevelWarn, "program rejected")
	e.Timestamp = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	e.Logger = "turtle"
	e.RunID = "abc"
	e.Fields["line"] = 3
	e.Fields["found"] = ":="
	return e
}

func TestTextFormatter(t *testing.T) {
	f := NewTextFormatter()
	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "12:00:00 [WRN] {turtle} (run=abc) program rejected [found=:= line=3]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestLogfmtFormatter(t *testing.T) {
	e := testEntry()
	e.Error = errors.New("boom")

	out, err := NewLogfmtFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	s := string(out)
	for _, want := range []string{`level=warn`, `message="program rejected"`, `run_id=abc`, `found=":="`, `line=3`, `error="boom"`} {
		if !strings.Contains(s, want) {
			t.Errorf("Format() missing %q in %q", want, s)
		}
	}
	if strings.Index(s, "found=") > strings.Index(s, "line=") {
		t.Error("fields should be rendered in sorted order")
	}
}

func TestConsoleFormatter_DisableColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true

	out, _ := f.Format(testEntry())
	if strings.Contains(string(out), "\033[") {
		t.Errorf("Format() with colors disabled contains escape codes: %q", out)
	}

	f.DisableColors = false
	out, _ = f.Format(testEntry())
	if !strings.HasPrefix(string(out), LevelWarn.Color()) {
		t.Errorf("Format() should start with level color: %q", out)
	}
}

func TestFieldsHelpers(t *testing.T) {
	a := Fields{"x": 1}
	b := a.Merge(Fields{"x": 2, "y": 3})

	if a["x"] != 1 {
		t.Error("Merge() should not modify the receiver")
	}
	if b["x"] != 2 || b["y"] != 3 {
		t.Errorf("Merge() = %v", b)
	}

	keys := b.Keys()
	if strings.Join(keys, ",") != "x,y" {
		t.Errorf("Keys() = %v, want [x y]", keys)
	}

	if Fields(nil).Clone() != nil {
		t.Error("Clone() of nil should be nil")
	}
}

package api

import (
	"bytes"
	"strings"
	"testing"
)

type labelList []string

func (l labelList) Text() string { return strings.Join(l, " | ") }

func TestOutputTo(t *testing.T) {
	data := map[string]any{"labels": []string{"1r", "1v"}}

	tests := []struct {
		name   string
		format OutputFormat
		data   any
		want   string
	}{
		{"json", OutputFormatJSON, data, "{\n  \"labels\": [\n    \"1r\",\n    \"1v\"\n  ]\n}\n"},
		{"yaml", OutputFormatYAML, data, "labels:\n  - 1r\n  - 1v\n"},
		{"text strings", OutputFormatText, []string{"i", "ii", "iii"}, "i\nii\niii\n"},
		{"text texter", OutputFormatText, labelList{"a", "b"}, "a | b\n"},
		{"text empty", OutputFormatText, []string{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := OutputTo(&buf, tt.format, tt.data); err != nil {
				t.Fatalf("OutputTo() error = %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("OutputTo() = %q, want %q", buf.String(), tt.want)
			}
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		if err := OutputTo(&bytes.Buffer{}, OutputFormat("xml"), data); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestSetOutputFormat(t *testing.T) {
	defer SetOutputFormat("yaml")

	SetOutputFormat("text")
	if GetOutputFormat() != OutputFormatText {
		t.Errorf("GetOutputFormat() = %s, want text", GetOutputFormat())
	}
	if IsStructuredOutput() {
		t.Error("text output should not be structured")
	}

	SetOutputFormat("bogus")
	if GetOutputFormat() != DefaultOutput {
		t.Errorf("GetOutputFormat() = %s, want default", GetOutputFormat())
	}
}

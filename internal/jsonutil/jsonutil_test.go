package jsonutil

import (
	"strings"
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	type body struct {
		Message string `json:"message"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{name: "valid JSON", data: []byte(`{"message":"test"}`)},
		{name: "invalid JSON", data: []byte(`<html>bad gateway</html>`), wantErr: true},
		{name: "empty body", data: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v body
			err := UnmarshalWithContext(tt.data, &v, "error body")
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if got := err.Error(); !strings.HasPrefix(got, "error body: ") {
					t.Errorf("error %q should start with context", got)
				}
				return
			}
			if v.Message != "test" {
				t.Errorf("Message = %q, want %q", v.Message, "test")
			}
		})
	}
}

func TestGetString(t *testing.T) {
	m := map[string]interface{}{
		"str":  "value",
		"num":  42.0,
		"bool": true,
		"nil":  nil,
	}

	tests := []struct {
		key  string
		want string
	}{
		{"str", "value"},
		{"num", ""},
		{"bool", ""},
		{"nil", ""},
		{"missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := GetString(m, tt.key); got != tt.want {
				t.Errorf("GetString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFirstString(t *testing.T) {
	m := map[string]interface{}{"error": "Unauthorized", "message": ""}
	if got := FirstString(m, "message", "error"); got != "Unauthorized" {
		t.Errorf("FirstString() = %q, want Unauthorized", got)
	}
	if got := FirstString(m, "detail"); got != "" {
		t.Errorf("FirstString(detail) = %q, want empty", got)
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"whole float", 42.0, "42"},
		{"fraction", 12.5, "12.5"},
		{"whole float beyond int64", 1e20, "100000000000000000000"},
		{"negative whole float beyond int64", -9.3e18, "-9300000000000000000"},
		{"bool", true, "true"},
		{"int", 7, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToString(tt.in); got != tt.want {
				t.Errorf("ToString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

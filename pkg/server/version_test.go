package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{
			name:   "no accept header",
			accept: "",
			want:   DefaultAPIVersion,
		},
		{
			name:   "generic json accept",
			accept: "application/json",
			want:   DefaultAPIVersion,
		},
		{
			name:   "vendor mime v1",
			accept: "application/vnd.somahealth.v1+json",
			want:   "v1",
		},
		{
			name:   "unsupported version falls back to default",
			accept: "application/vnd.somahealth.v9+json",
			want:   DefaultAPIVersion,
		},
		{
			name:   "malformed vendor mime",
			accept: "application/vnd.somahealth.+json",
			want:   DefaultAPIVersion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/bmi", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}

			if got := negotiateAPIVersion(req); got != tt.want {
				t.Errorf("negotiateAPIVersion() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIsValidAPIVersion(t *testing.T) {
	if !isValidAPIVersion("v1") {
		t.Error("expected v1 to be valid")
	}
	for _, v := range []string{"v2", "v0", "", "1", "V1"} {
		if isValidAPIVersion(v) {
			t.Errorf("expected %q to be invalid", v)
		}
	}
}

func TestSetAPIVersionHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	SetAPIVersionHeader(rec, "v1")

	if got := rec.Header().Get("X-API-Version"); got != "v1" {
		t.Errorf("expected X-API-Version v1, got %s", got)
	}
}

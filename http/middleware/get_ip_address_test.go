package middleware_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencourse/enroll/http/middleware"
)

func TestGetIPAddress(t *testing.T) {
	for _, tc := range []struct {
		name     string
		header   http.Header
		expected string
	}{
		{"None", http.Header{}, "0.0.0.0"},
		{"Public", http.Header{"X-Forwarded-For": []string{"93.184.216.34"}}, "93.184.216.34"},
		{"Private-Skipped", http.Header{"X-Forwarded-For": []string{"10.1.2.3"}}, "0.0.0.0"},
		{"Rightmost-Public", http.Header{"X-Forwarded-For": []string{"93.184.216.34, 203.0.113.9"}}, "203.0.113.9"},
		{"Real-Ip-Fallback", http.Header{"X-Real-Ip": []string{"203.0.113.9"}}, "203.0.113.9"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, middleware.GetIPAddress(tc.header))
		})
	}
}

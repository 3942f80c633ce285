package http_test

import (
	"net/http/httptest"
	"testing"

	pkghttp "github.com/ItsCoreyE/creatorsite/pkg/http"
	"github.com/stretchr/testify/assert"
)

func TestExtractClientIP_UntrustedPeerIgnoresHeaders(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "203.0.113.7:44321"
	req.Header.Set("X-Forwarded-For", "198.51.100.1")

	// No trusted proxies configured: the spoofable header must be ignored
	ip := pkghttp.ExtractClientIP(req, &pkghttp.IPConfig{})
	assert.Equal(t, "203.0.113.7", ip)
}

func TestExtractClientIP_TrustedProxyHonorsForwardedFor(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.5:44321"
	req.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.5")

	config := &pkghttp.IPConfig{TrustedProxies: []string{"10.0.0.0/8"}}
	ip := pkghttp.ExtractClientIP(req, config)
	assert.Equal(t, "198.51.100.1", ip)
}

func TestExtractClientIP_TrustedProxyRealIPFallback(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.5:44321"
	req.Header.Set("X-Real-IP", "198.51.100.2")

	config := &pkghttp.IPConfig{TrustedProxies: []string{"10.0.0.0/8"}}
	ip := pkghttp.ExtractClientIP(req, config)
	assert.Equal(t, "198.51.100.2", ip)
}

func TestExtractClientIP_InvalidHeaderValuesFallThrough(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.0.0.5:44321"
	req.Header.Set("X-Forwarded-For", "not-an-ip")

	config := &pkghttp.IPConfig{TrustedProxies: []string{"10.0.0.0/8"}}
	ip := pkghttp.ExtractClientIP(req, config)
	assert.Equal(t, "10.0.0.5", ip)
}

func TestExtractClientIP_NilConfig(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "203.0.113.7:44321"

	ip := pkghttp.ExtractClientIP(req, nil)
	assert.Equal(t, "203.0.113.7", ip)
}

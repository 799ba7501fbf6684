package giantbomb

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientOptionsApply(t *testing.T) {
	customHTTP := &http.Client{}

	client := NewClient(
		"key",
		WithBaseURL("https://example.test/api/"),
		WithHTTPClient(customHTTP),
		WithUserAgent("tester/2.0"),
	)

	require.Equal(t, "key", client.apiKey)
	require.Equal(t, "https://example.test/api", client.baseURL)
	require.Equal(t, customHTTP, client.httpClient)
	require.Equal(t, "tester/2.0", client.userAgent)
}

func TestClientOptionsIgnoreEmptyValues(t *testing.T) {
	client := NewClient("key", WithBaseURL(""), WithHTTPClient(nil), WithUserAgent(""))

	require.Equal(t, defaultBaseURL, client.baseURL)
	require.Equal(t, defaultUserAgent, client.userAgent)
	require.NotNil(t, client.httpClient)
}

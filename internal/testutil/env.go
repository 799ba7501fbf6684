package testutil

import (
	"os"
	"testing"
)

// ConfigEnvVars lists every environment variable the config package reads.
var ConfigEnvVars = []string{
	"GB_TOKEN",
	"GIANTBOMB_API_KEY",
	"GB_BASE_URL",
	"GB_USER_AGENT",
	"LISTEN_ADDR",
	"REQUEST_TIMEOUT",
	"SHUTDOWN_TIMEOUT",
	"LOG_LEVEL",
	"FLUENT_ENABLED",
	"FLUENT_HOST",
	"FLUENT_PORT",
	"FLUENT_TAG",
}

// UnsetEnv removes keys from the environment for the duration of the test.
// Values set later, for example by a .env loader, are removed on cleanup too.
func UnsetEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		old, had := os.LookupEnv(key)
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset environment variable %q: %v", key, err)
		}
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(key, old)
			} else {
				_ = os.Unsetenv(key)
			}
		})
	}
}

// IsolateConfigEnv clears every config environment variable for the test.
func IsolateConfigEnv(t *testing.T) {
	t.Helper()
	UnsetEnv(t, ConfigEnvVars...)
}

package testutil

import (
	"testing"

	"github.com/spf13/viper"
)

// ResetViper resets the global viper instance now and again when the test
// completes.
func ResetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// NewViper returns a fresh viper instance with the config environment cleared,
// so settings from the developer's shell do not leak into tests.
func NewViper(t *testing.T) *viper.Viper {
	t.Helper()

	IsolateConfigEnv(t)
	return viper.New()
}

package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/gbrandom/internal/config"
	"github.com/lepinkainen/gbrandom/internal/testutil"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	originalArgs := os.Args
	os.Args = append([]string{"gbrandom"}, args...)
	t.Cleanup(func() { os.Args = originalArgs })

	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("gbrandom"),
		kong.Description("Serve random games from the Giant Bomb catalog."),
		kong.UsageOnError(),
		kong.Exit(func(code int) {
			t.Fatalf("unexpected Kong exit %d", code)
		}),
	)

	return cli, ctx
}

// newTestViper returns an isolated viper and points the CLI at a .env file
// that does not exist.
func newTestViper(t *testing.T, cli *CLI) *viper.Viper {
	t.Helper()

	env := testutil.NewTestEnv(t)
	cli.EnvFile = env.Path("missing.env")

	orig := logWriter
	logWriter = io.Discard
	t.Cleanup(func() { logWriter = orig })

	return testutil.NewViper(t)
}

func TestServeIsDefaultCommand(t *testing.T) {
	_, ctx := parseCLI(t)
	assert.Equal(t, "serve", ctx.Command())
}

func TestServeCommandParsing(t *testing.T) {
	cli, ctx := parseCLI(t, "--log-level", "debug", "serve", "--listen", "127.0.0.1:9000")

	assert.Equal(t, "serve", ctx.Command())
	assert.Equal(t, "debug", cli.LogLevel)
	assert.Equal(t, "127.0.0.1:9000", cli.Serve.Listen)
	assert.Equal(t, ".env", cli.EnvFile)
}

func TestRandomCommandParsing(t *testing.T) {
	cli, ctx := parseCLI(t, "random", "-f", "markdown")

	assert.Equal(t, "random", ctx.Command())
	assert.Equal(t, "markdown", cli.Random.Format)
}

func TestRandomCommandDefaultFormat(t *testing.T) {
	cli, _ := parseCLI(t, "random")
	assert.Equal(t, "json", cli.Random.Format)
}

func TestSetupRequiresAPIKey(t *testing.T) {
	cli := &CLI{}
	v := newTestViper(t, cli)

	app, err := setup(cli, v)
	assert.Nil(t, app)
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}

func TestSetupAppliesFlags(t *testing.T) {
	cli := &CLI{LogLevel: "debug", Serve: ServeCmd{Listen: "127.0.0.1:9001"}}
	v := newTestViper(t, cli)
	t.Setenv("GB_TOKEN", "abc123")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:7000")

	app, err := setup(cli, v)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	assert.Equal(t, "abc123", app.Config.APIKey)
	assert.Equal(t, "127.0.0.1:9001", app.Config.ListenAddr)
	assert.Equal(t, "debug", app.Config.LogLevel)
	assert.NotNil(t, app.Logger)
}

func TestSetupLoadsEnvFile(t *testing.T) {
	env := testutil.NewTestEnv(t)
	envFile := env.WriteFile(".env", "GB_TOKEN=from-dotenv\n")

	cli := &CLI{}
	v := newTestViper(t, cli)
	cli.EnvFile = envFile

	app, err := setup(cli, v)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	assert.Equal(t, "from-dotenv", app.Config.APIKey)
}

func TestSetupReadsConfigFile(t *testing.T) {
	env := testutil.NewTestEnv(t)
	cfgFile := env.WriteFile("gbrandom.yaml", "giantbomb:\n  apikey: from-file\nserver:\n  listen: 127.0.0.1:9200\n")

	cli := &CLI{Config: cfgFile}
	v := newTestViper(t, cli)

	app, err := setup(cli, v)
	require.NoError(t, err)
	t.Cleanup(app.Close)

	assert.Equal(t, "from-file", app.Config.APIKey)
	assert.Equal(t, "127.0.0.1:9200", app.Config.ListenAddr)
}

func TestSetupRejectsBadLogLevel(t *testing.T) {
	cli := &CLI{LogLevel: "loud"}
	v := newTestViper(t, cli)
	t.Setenv("GB_TOKEN", "abc123")

	_, err := setup(cli, v)
	assert.Error(t, err)
}

// fakeGiantBomb serves a one-game catalog.
func fakeGiantBomb(t *testing.T) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "abc123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"Invalid API Key","status_code":100}`)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/api/games/" && !r.URL.Query().Has("offset"):
			_, _ = io.WriteString(w, `{"error":"OK","status_code":1,"number_of_total_results":1,"results":[]}`)
		case r.URL.Path == "/api/games/":
			_, _ = fmt.Fprintf(w, `{"error":"OK","status_code":1,"number_of_total_results":1,"results":[{"api_detail_url":"%s/api/game/3030-1/"}]}`, srv.URL)
		case r.URL.Path == "/api/game/3030-1/":
			_, _ = io.WriteString(w, `{"error":"OK","status_code":1,"results":{"id":1,"guid":"3030-1","name":"Test Game"}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testApp(t *testing.T, baseURL, listen string) *App {
	t.Helper()

	origNew, origClose := newHTTPClient, closeHTTPClient
	newHTTPClient = func(timeout time.Duration) *http.Client { return &http.Client{Timeout: timeout} }
	closeHTTPClient = func(*http.Client) error { return nil }
	t.Cleanup(func() { newHTTPClient, closeHTTPClient = origNew, origClose })

	cli := &CLI{Serve: ServeCmd{Listen: listen}}
	v := newTestViper(t, cli)
	t.Setenv("GB_TOKEN", "abc123")
	t.Setenv("GB_BASE_URL", baseURL)

	app, err := setup(cli, v)
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app
}

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	orig := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = orig })
	return &buf
}

func TestRandomCommandPrintsGame(t *testing.T) {
	remote := fakeGiantBomb(t)
	app := testApp(t, remote.URL+"/api", "")
	out := captureStdout(t)

	cmd := &RandomCmd{Format: "json"}
	require.NoError(t, cmd.run(context.Background(), app))

	assert.Contains(t, out.String(), `"name": "Test Game"`)
}

func TestRandomCommandMarkdown(t *testing.T) {
	remote := fakeGiantBomb(t)
	app := testApp(t, remote.URL+"/api", "")
	out := captureStdout(t)

	cmd := &RandomCmd{Format: "md"}
	require.NoError(t, cmd.run(context.Background(), app))

	assert.True(t, strings.HasPrefix(out.String(), "---\n"))
	assert.Contains(t, out.String(), "# Test Game")
}

func TestRandomCommandPropagatesRemoteErrors(t *testing.T) {
	remote := fakeGiantBomb(t)
	app := testApp(t, remote.URL+"/api", "")
	app.Config.APIKey = "wrong"
	out := captureStdout(t)

	cmd := &RandomCmd{Format: "json"}
	err := cmd.run(context.Background(), app)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API Key")
	assert.NotContains(t, err.Error(), "wrong")
	assert.Empty(t, out.String())
}

func TestServeStopsOnCancel(t *testing.T) {
	remote := fakeGiantBomb(t)
	app := testApp(t, remote.URL+"/api", "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, app) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}

func TestServeReportsListenErrors(t *testing.T) {
	remote := fakeGiantBomb(t)
	app := testApp(t, remote.URL+"/api", "256.0.0.1:bad")

	err := serve(context.Background(), app)
	assert.Error(t, err)
}

package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wege-go/internal/api"
	"github.com/mcoot/wege-go/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "wege-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/wege")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		BotService:     app.BotService,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type tileResponse struct {
	Kind        string   `json:"kind"`
	Orientation string   `json:"orientation"`
	Terrain     []string `json:"terrain"`
}

type gameResponse struct {
	ID         string `json:"id"`
	State      string `json:"state"`
	Turn       string `json:"turn"`
	MoveCount  int    `json:"move_count"`
	SupplySize int    `json:"supply_size"`
	Settings   struct {
		Rows int `json:"rows"`
		Cols int `json:"cols"`
	} `json:"settings"`
	NextTile *tileResponse `json:"next_tile"`
	Board    struct {
		Cells [][]*tileResponse `json:"cells"`
	} `json:"board"`
}

type resultResponse struct {
	GameID  string `json:"game_id"`
	Players []struct {
		Side  string `json:"side"`
		Score struct {
			Total int `json:"total"`
		} `json:"score"`
	} `json:"players"`
	Winner *string `json:"winner"`
}

type listResponse struct {
	Games []string `json:"games"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_GameFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create a small game
	output, err := cli.run("game", "new", "--rows", "3", "--cols", "3")
	require.NoError(t, err, "output: %s", output)

	var game gameResponse
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	assert.Equal(t, "not_started", game.State)
	assert.Equal(t, "land", game.Turn)
	assert.Equal(t, 3, game.Settings.Rows)
	require.NotNil(t, game.NextTile)
	id := game.ID

	// List includes it
	output, err = cli.run("game", "list")
	require.NoError(t, err, "output: %s", output)
	var list listResponse
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.Contains(t, list.Games, id)

	// Rotate the waiting tile
	output, err = cli.run("game", "rotate", id)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	assert.Equal(t, "top_right", game.NextTile.Orientation)

	// First placement is always legal
	output, err = cli.run("game", "place", id, "1", "1")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	assert.Equal(t, "in_progress", game.State)
	assert.Equal(t, "water", game.Turn)
	assert.NotNil(t, game.Board.Cells[1][1])

	// Statistics are not available yet
	output, err = cli.run("game", "stats", id)
	require.Error(t, err)
	assert.Contains(t, output, "GAME_NOT_FINISHED")

	// Nothing touches the corner cell
	output, err = cli.run("game", "place", id, "0", "0")
	require.Error(t, err)
	assert.Contains(t, output, "ILLEGAL_MOVE")

	// Let the bot finish the game
	output, err = cli.run("game", "autoplay", id, "--strategy", "first")
	require.NoError(t, err, "output: %s", output)

	output, err = cli.run("game", "get", id)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &game))
	assert.Equal(t, "finished", game.State)
	for _, row := range game.Board.Cells {
		for _, cell := range row {
			assert.NotNil(t, cell)
		}
	}

	output, err = cli.run("game", "stats", id)
	require.NoError(t, err, "output: %s", output)
	var result resultResponse
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, id, result.GameID)
	require.Len(t, result.Players, 2)
	assert.Equal(t, "land", result.Players[0].Side)

	// Delete it
	output, err = cli.run("game", "delete", id)
	require.NoError(t, err, "output: %s", output)
	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Game deleted", msg.Message)

	output, err = cli.run("game", "get", id)
	require.Error(t, err)
	assert.Contains(t, output, "GAME_NOT_FOUND")
}

func TestCLI_InvalidArguments(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("game", "new", "--rows", "12")
	require.Error(t, err)
	assert.Contains(t, output, "INVALID_SETTINGS")

	output, err = cli.run("game", "place", "GAME01", "x", "0")
	require.Error(t, err)
	assert.Contains(t, output, "invalid row")

	_, err = cli.run("--output", "yaml", "health")
	require.Error(t, err)
}

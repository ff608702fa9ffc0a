package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/soccermanager/internal/api"
	"github.com/mcoot/soccermanager/internal/factory"
	"github.com/mcoot/soccermanager/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func buildCLI(t *testing.T) string {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	binaryPath := filepath.Join(projectRoot, "bin", "soccer-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/soccer")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return binaryPath
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	return &cliRunner{
		binaryPath: buildCLI(t),
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

func (r *cliRunner) runText(args ...string) (string, error) {
	fullArgs := append([]string{"--server", r.serverURL}, args...)

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

func freeAddr(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())
	return addr
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	logger := testutil.NopLogger()
	app := factory.New(factory.Config{Logger: logger})

	router := api.NewRouter(api.RouterConfig{
		Logger: logger,
		Roster: app.SharedRoster,
	})
	server := api.NewServer(router, api.DefaultServerConfig(), logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := server.Serve(ctx, listener); err != nil {
			t.Logf("server error: %v", err)
		}
	}()

	serverURL := "http://" + listener.Addr().String()
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			cancel()
			<-done
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
type playerResponse struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	PositionID  int    `json:"position_id"`
	SkillRating int    `json:"skill_rating"`
}

type mutationResponse struct {
	Message string          `json:"message"`
	Player  *playerResponse `json:"player"`
}

type playerListResponse struct {
	Players []playerResponse `json:"players"`
}

type rosterResponse struct {
	Roster string `json:"roster"`
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

func TestCLI_PlayerCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create
	output, err := cli.run("player", "create", "--name", "Mohamed Salah", "--position", "forward", "--skill", "91")
	require.NoError(t, err, "output: %s", output)

	var created mutationResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.Equal(t, "Player Mohamed Salah added successfully", created.Message)
	require.NotNil(t, created.Player)
	assert.Equal(t, 4, created.Player.PositionID)

	output, err = cli.run("player", "create", "--name", "Alisson Becker", "--position", "1", "--skill", "89")
	require.NoError(t, err, "output: %s", output)

	// Duplicate is rejected with the roster's message
	output, err = cli.run("player", "create", "--name", "Mohamed Salah", "--position", "3", "--skill", "50")
	require.Error(t, err)
	assert.Contains(t, output, "Player with name Mohamed Salah already exists (PLAYER_EXISTS)")

	// Get
	output, err = cli.run("player", "get", "Mohamed Salah")
	require.NoError(t, err, "output: %s", output)

	var player playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &player))
	assert.Equal(t, "Forward", player.Position)
	assert.Equal(t, 91, player.SkillRating)

	// Update skill
	output, err = cli.run("player", "update-skill", "Mohamed Salah", "--skill", "93")
	require.NoError(t, err, "output: %s", output)

	var updated mutationResponse
	require.NoError(t, json.Unmarshal([]byte(output), &updated))
	assert.Equal(t, "Mohamed Salah updated successfully", updated.Message)

	// Search
	output, err = cli.run("player", "search", "--name", "SAL")
	require.NoError(t, err, "output: %s", output)

	var found playerListResponse
	require.NoError(t, json.Unmarshal([]byte(output), &found))
	require.Len(t, found.Players, 1)
	assert.Equal(t, 93, found.Players[0].SkillRating)

	// List
	output, err = cli.run("player", "list")
	require.NoError(t, err, "output: %s", output)

	var roster rosterResponse
	require.NoError(t, json.Unmarshal([]byte(output), &roster))
	assert.Equal(t, "Mohamed Salah - Forward - 93\nAlisson Becker - Goalkeeper - 89", roster.Roster)

	// Remove
	output, err = cli.run("player", "remove", "Mohamed Salah")
	require.NoError(t, err, "output: %s", output)

	var removed messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &removed))
	assert.Equal(t, "Player removed successfully", removed.Message)

	output, err = cli.run("player", "get", "Mohamed Salah")
	require.Error(t, err)
	assert.Contains(t, output, "Player Mohamed Salah not found (PLAYER_NOT_FOUND)")
}

func TestCLI_TextOutput(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.runText("player", "create", "--name", "Virgil van Dijk", "--position", "defender", "--skill", "90")
	require.NoError(t, err, "output: %s", output)
	assert.Equal(t, "Player Virgil van Dijk added successfully\n", output)

	output, err = cli.runText("player", "get", "Virgil van Dijk")
	require.NoError(t, err, "output: %s", output)
	assert.Equal(t, "Name: Virgil van Dijk, Position: Defender, Skill Rating: 90\n", output)

	output, err = cli.runText("player", "search", "--position", "defender")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "Virgil van Dijk")
	assert.Contains(t, output, "Defender")

	output, err = cli.runText("player", "search", "--position", "striker")
	require.Error(t, err)
	assert.Contains(t, output, "--position")
}

func TestCLI_Menu(t *testing.T) {
	binary := buildCLI(t)

	input := strings.Join([]string{
		"1", "Mohamed Salah", "4", "91",
		"6",
		"7",
	}, "\n") + "\n"

	cmd := exec.Command(binary, "menu")
	cmd.Stdin = strings.NewReader(input)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	require.NoError(t, cmd.Run(), "stderr: %s", stderr.String())
	assert.Contains(t, stdout.String(), "Player Mohamed Salah added successfully")
	assert.Contains(t, stdout.String(), "Mohamed Salah - Forward - 91")
	assert.Empty(t, stderr.String())
}

func TestCLI_ServeShutsDownOnSignal(t *testing.T) {
	binary := buildCLI(t)
	addr := freeAddr(t)

	cmd := exec.Command(binary, "serve", "--addr", addr, "--log-level", "error")
	require.NoError(t, cmd.Start())

	waitForServer(t, "http://"+addr+"/api/v1/health")

	cli := &cliRunner{binaryPath: binary, serverURL: "http://" + addr}
	output, err := cli.run("player", "create", "--name", "Joe Gomez", "--position", "2", "--skill", "78")
	require.NoError(t, err, "output: %s", output)

	require.NoError(t, cmd.Process.Signal(syscall.SIGINT))

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		_ = cmd.Process.Kill()
		t.Fatal("server did not stop after SIGINT")
	}
}

func TestCLI_ServeReadsAddrFromEnv(t *testing.T) {
	binary := buildCLI(t)
	addr := freeAddr(t)

	cmd := exec.Command(binary, "serve")
	cmd.Env = append(os.Environ(), "SOCCER_ADDR="+addr, "SOCCER_LOG_LEVEL=error")
	require.NoError(t, cmd.Start())
	defer func() {
		_ = cmd.Process.Signal(syscall.SIGTERM)
		_ = cmd.Wait()
	}()

	waitForServer(t, "http://"+addr+"/api/v1/health")
}

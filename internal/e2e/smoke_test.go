package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/auth/login-json":
			_, _ = fmt.Fprint(w, `{"access_token":"token-123","token_type":"bearer","user":{"id":1,"email":"alice@example.com","username":"alice","first_name":"Alice","last_name":"Liddell","is_active":true}}`)
		case "/api/v1/cart":
			assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
			_, _ = fmt.Fprint(w, `{"id":1,"user_id":1,"items":[],"total_items":0,"total_amount":0}`)
		default:
			t.Errorf("unexpected request path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	stdout, stderr, err := runSF(t, binaryPath, home, server.URL,
		"login", "--username", "alice", "--password", "s3cret")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Welcome back, Alice!")

	stdout, stderr, err = runSF(t, binaryPath, home, server.URL, "whoami")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Alice Liddell (@alice)")

	stdout, stderr, err = runSF(t, binaryPath, home, server.URL, "cart", "show")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Your cart is empty.")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "sf-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/sf")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build sf binary: %s", string(output))
	return binaryPath
}

func runSF(t *testing.T, binaryPath, home, serverURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"SF_API_BASE_URL="+serverURL+"/api/v1",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

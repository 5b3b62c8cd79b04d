package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/gimme-omni/internal/adapters/tsops/tsopstest"
	"github.com/bnema/gimme-omni/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	now := time.Now().UTC()
	server := tsopstest.NewServer(tsopstest.Fixture{
		Token: "tok-123",
		Agents: []tsopstest.Agent{
			{Username: "achulock", State: "Available", Skills: []string{"fl_english_ib"}, AdjustedLastContactEndTime: ago(now, 20*time.Hour)},
			{Username: "peer", State: "Available", Skills: []string{"fl_english_ib"}, AdjustedLastContactEndTime: ago(now, 30*time.Hour)},
		},
		Cases: []tsopstest.Case{
			{Subject: "00123456 - PI Server down", Timestamp: ago(now, 4*time.Hour), Category: 1, Origin: "Web", Language: "English"},
		},
	})
	defer server.Close()

	env := []string{
		"HOME=" + home,
		"OMNI_SECRETS_BACKEND=file",
		"OMNI_API_BASE_URL=" + server.URL,
		"OMNI_AGENT_USERNAME=achulock",
	}

	_, stderr, err := runOmni(t, binaryPath, env, "auth", "set", "--secret-value", "tok-123")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runOmni(t, binaryPath, env, "report")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "00123456 - PI Server down")
	assert.Contains(t, stdout, "100")
	assert.Contains(t, stdout, "0.00:00:00")

	snapshotPath := filepath.Join(home, "snap.toml")
	_, stderr, err = runOmni(t, binaryPath, env, "snapshot", "save", snapshotPath)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runOmni(t, binaryPath, env, "report", "--snapshot", snapshotPath, "--at-capture", "--json")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, `"rank_status": "projected"`)
}

func ago(now time.Time, d time.Duration) string {
	return string(domain.NewTimePoint(now.Add(-d)))
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "omni-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/omni")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build omni binary: %s", string(output))
	return binaryPath
}

func runOmni(t *testing.T, binaryPath string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Dir = t.TempDir()

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

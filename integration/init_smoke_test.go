package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"merittrack/integration/harness"
)

func TestInitSmoke(t *testing.T) {
	binPath := harness.BuildBinary(t)
	runDir := t.TempDir()
	workspaceRoot := filepath.Join(t.TempDir(), "chapter")

	args := []string{
		"init",
		"--workspace", workspaceRoot,
	}
	stdout, stderr, code := harness.Run(t, binPath, runDir, args)
	if code != 0 {
		t.Fatalf("merittrack init exit code %d\nstdout:\n%s\nstderr:\n%s", code, stdout, stderr)
	}

	paths := []string{
		filepath.Join(workspaceRoot, "catalog"),
		filepath.Join(workspaceRoot, "state"),
		filepath.Join(workspaceRoot, "artifacts", "reports"),
		filepath.Join(workspaceRoot, "audit"),
		filepath.Join(workspaceRoot, "state", "tracker.sqlite"),
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("missing init path %s: %v", path, err)
		}
	}

	auditPath := filepath.Join(workspaceRoot, "audit", "audit.sqlite")
	if _, err := os.Stat(auditPath); err != nil {
		t.Fatalf("audit db not written at %s: %v", auditPath, err)
	}
	requireAuditEvents(t, auditPath, []string{
		"workspace_init_started",
		"workspace_init_finished",
	})
}

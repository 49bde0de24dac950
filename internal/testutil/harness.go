package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/ifcbridge/internal/app"
	"github.com/specialistvlad/ifcbridge/internal/diagnostics"
	"github.com/specialistvlad/ifcbridge/internal/hcl"
	"github.com/specialistvlad/ifcbridge/internal/host"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an import test run.
type HarnessResult struct {
	LogOutput   string
	Err         error
	App         *app.App
	Host        *host.Memory
	Report      *app.Report
	Diagnostics *diagnostics.Recorder
}

// HarnessOption tweaks the app configuration or host used by RunImport.
type HarnessOption func(*harness)

type harness struct {
	cfg  app.Config
	host *host.Memory
}

// WithWorkers sets the element worker count.
func WithWorkers(n int) HarnessOption {
	return func(h *harness) { h.cfg.WorkerCount = n }
}

// WithHost runs the import against doc instead of a fresh document.
func WithHost(doc *host.Memory) HarnessOption {
	return func(h *harness) { h.host = doc }
}

// WriteFiles writes files (relative path to content) under a new temp dir
// and returns the dir.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	return dir
}

// RunImport writes files to a temp dir, loads them with the HCL loader and
// runs a full import. Startup and run errors both land in HarnessResult.Err.
func RunImport(t *testing.T, files map[string]string, opts ...HarnessOption) *HarnessResult {
	t.Helper()

	h := &harness{
		cfg: app.Config{
			ModelPath:   WriteFiles(t, files),
			LogLevel:    "debug",
			LogFormat:   "text",
			WorkerCount: 1,
		},
		host: host.New(),
	}
	for _, opt := range opts {
		opt(h)
	}

	logBuffer := &SafeBuffer{}
	recorder := &diagnostics.Recorder{}
	result := &HarnessResult{Host: h.host, Diagnostics: recorder}

	t.Cleanup(func() {
		if os.Getenv("IFCBRIDGE_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	cfg, err := app.NewConfig(h.cfg)
	require.NoError(t, err)

	testApp, err := app.NewApp(logBuffer, cfg, hcl.NewLoader(), app.WithHost(h.host), app.WithSink(recorder))
	if err != nil {
		result.Err = err
		result.LogOutput = logBuffer.String()
		return result
	}

	result.App = testApp
	result.Report, result.Err = testApp.Run(context.Background())
	result.LogOutput = logBuffer.String()
	return result
}

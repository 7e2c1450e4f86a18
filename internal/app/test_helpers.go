package app

import (
	"bytes"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/vk/plantgen/internal/generate"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// TestConfig returns a valid generate configuration writing into dir.
func TestConfig(t *testing.T, dir string) Config {
	t.Helper()
	return Config{
		Command:   CommandGenerate,
		OutDir:    dir,
		Width:     generate.DefaultSize,
		Height:    generate.DefaultSize,
		Steps:     generate.DefaultSteps,
		Timeout:   time.Second,
		LogFormat: "text",
		LogLevel:  "debug",
	}
}

// SetupAppTest creates a new app instance for system testing. It returns
// the app, its console output and its log output.
func SetupAppTest(t *testing.T, cfg Config, tool generate.Tool) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	validated, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	outBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	testApp := NewApp(outBuffer, logBuffer, validated, NewCatalogLoader(), tool)

	t.Cleanup(func() {
		if os.Getenv("PLANTGEN_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "editfile", "editfile.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
}

func TestSetupWithoutFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	var buf bytes.Buffer
	Setup(Options{Verbosity: 1, Console: &buf, NoColor: true})
	log.Info().Msg("hello from test")

	if !strings.Contains(buf.String(), "hello from test") {
		t.Errorf("console output = %q, want it to contain the message", buf.String())
	}
	if _, err := os.Stat(filepath.Join(tempDir, "editfile")); !os.IsNotExist(err) {
		t.Error("log directory should not be created when File is false")
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	got := getLogFilePath()
	want := filepath.Join("/custom/state", "editfile", "editfile.log")
	if got != want {
		t.Errorf("getLogFilePath() = %s, want %s", got, want)
	}
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("test-component")
	logger.Info().Msg("test message")

	if !strings.Contains(buf.String(), `"component":"test-component"`) {
		t.Errorf("output %q does not carry the component field", buf.String())
	}
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "create")
	done()

	output := buf.String()
	if !strings.Contains(output, "Operation started") || !strings.Contains(output, "Operation completed") {
		t.Errorf("output %q is missing start/completion entries", output)
	}
	if !strings.Contains(output, `"operation":"create"`) {
		t.Errorf("output %q is missing the operation field", output)
	}
}

package cmdlogger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/inductiveautomation/versioncmp/internal/cmdlogger"
)

func TestHandler_Writers(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	handler := cmdlogger.New(stdout, stderr)
	handler.SetLevel(slog.LevelDebug)

	logger := slog.New(handler)

	logger.Debug("parsed version", "version", "1.0a1")
	logger.Info("1.0 < 1.1")
	logger.Warn("skipping blank line")
	logger.Error("something went wrong")

	if diff := cmp.Diff("parsed version version=1.0a1\n1.0 < 1.1\n", stdout.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff("skipping blank line\nsomething went wrong\n", stderr.String()); diff != "" {
		t.Errorf("stderr mismatch (-want +got):\n%s", diff)
	}

	if !handler.HasErrored() {
		t.Errorf("expected handler to have errored")
	}

	if handler.HasErroredBecauseInvalidConfig() {
		t.Errorf("did not expect handler to have errored because of config")
	}
}

func TestHandler_SendEverythingToStderr(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	handler := cmdlogger.New(stdout, stderr)
	handler.SendEverythingToStderr()

	logger := slog.New(handler)

	logger.Debug("not shown")
	logger.Info("shown on stderr")

	if stdout.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", stdout.String())
	}

	if diff := cmp.Diff("shown on stderr\n", stderr.String()); diff != "" {
		t.Errorf("stderr mismatch (-want +got):\n%s", diff)
	}

	if handler.HasErrored() {
		t.Errorf("did not expect handler to have errored")
	}
}

func TestHandler_InvalidConfig(t *testing.T) {
	t.Parallel()

	handler := cmdlogger.New(&bytes.Buffer{}, &bytes.Buffer{})

	slog.New(handler).Error("Ignored invalid config file at versioncmp.toml because: unknown keys")

	if !handler.HasErroredBecauseInvalidConfig() {
		t.Errorf("expected handler to have errored because of config")
	}
}

package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog/log"

	"github.com/civilapp/user-management/internal/logger"
)

func TestLogger(t *testing.T) {
	type testCase struct {
		name             string
		cfg              logger.Log
		shouldHaveOutPut bool
		outPutIsJSON     bool
	}

	testCases := []testCase{
		{
			name: "no logger enabled log level not set",
			cfg: logger.Log{
				LogLevel:    "",
				ServiceName: "test",
				AppName:     "test",
			},
			shouldHaveOutPut: false,
		},
		{
			name: "console enabled log level info",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "console enabled console writer enabled",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: true},
			},
			shouldHaveOutPut: true,
		},
		{
			name: "console enabled console writer disabled info expect json",
			cfg: logger.Log{
				LogLevel:    "info",
				ServiceName: "test",
				AppName:     "test",
				Console:     logger.Console{Enabled: true, UseConsoleWriter: false},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
		{
			name: "console enabled console writer disabled trace expect json stack",
			cfg: logger.Log{
				LogLevel:     "trace",
				ServiceName:  "test",
				AppName:      "test",
				ReportCaller: true,
				Console:      logger.Console{Enabled: true, UseConsoleWriter: false},
			},
			shouldHaveOutPut: true,
			outPutIsJSON:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := testLoggerConfig(t, tc.cfg)
			t.Logf("out: %s", out)

			switch {
			case out == "" && tc.shouldHaveOutPut:
				t.Errorf("expected console output but got none")
			case tc.outPutIsJSON:
				type line struct {
					Timestamp string
					Level     string
					Message   string
					Exception string
				}

				dummy := line{}

				for _, outLine := range strings.Split(out, "\n") {
					if outLine == "" {
						continue
					}

					if err := json.Unmarshal([]byte(outLine), &dummy); err != nil {
						t.Errorf("expected json output but got: %s", out) //nolint:goerr113
					} else {
						t.Log(dummy)
					}
				}
			}
		})
	}
}

func TestInitErrors(t *testing.T) {
	testCases := []struct {
		name string
		cfg  logger.Log
		want error
	}{
		{
			name: "unsupported level",
			cfg:  logger.Log{LogLevel: "loud", ServiceName: "test", AppName: "test"},
		},
		{
			name: "empty service name",
			cfg:  logger.Log{LogLevel: "info", AppName: "test"},
			want: logger.ErrServiceNameIsEmpty,
		},
		{
			name: "empty app name",
			cfg:  logger.Log{LogLevel: "info", ServiceName: "test"},
			want: logger.ErrAppNameIsEmpty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := logger.Init(tc.cfg)
			if err == nil {
				t.Fatal("expected an error")
			}

			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNamed(t *testing.T) {
	cfg := logger.Log{
		LogLevel:    "info",
		ServiceName: "test",
		AppName:     "test",
		Console:     logger.Console{Enabled: true},
	}

	// keep default std out
	stdout := os.Stdout

	r, w, _ := os.Pipe()
	os.Stdout = w

	if err := logger.Init(cfg); err != nil {
		t.Error(err)
	}

	named := logger.Named("resolver")
	named.Info().Msg("named message")

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout
	out := <-outC

	var line struct {
		Timestamp string `json:"timestamp"`
		Level     string `json:"level"`
		Message   string `json:"message"`
		Logger    string `json:"logger"`
	}

	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &line); err != nil {
		t.Fatalf("expected one json line but got: %q", out)
	}

	if line.Logger != "resolver" {
		t.Errorf("expected logger field %q, got %q", "resolver", line.Logger)
	}

	if line.Message != "named message" {
		t.Errorf("unexpected message %q", line.Message)
	}

	if line.Timestamp == "" || line.Level != "info" {
		t.Errorf("unexpected line shape: %+v", line)
	}
}

func TestNamedIsMemoized(t *testing.T) {
	cfg := logger.Log{
		LogLevel:    "info",
		ServiceName: "test",
		AppName:     "test",
		Console:     logger.Console{Enabled: true},
	}

	stdout := os.Stdout

	r, w, _ := os.Pipe()
	os.Stdout = w

	if err := logger.Init(cfg); err != nil {
		t.Error(err)
	}

	// request the same name twice; a naive registry would stack a second
	// "logger" field onto the context on the repeated request
	logger.Named("api")
	memoized := logger.Named("api")
	memoized.Info().Msg("memoized")

	outC := make(chan string)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout
	out := <-outC

	if got := strings.Count(out, `"logger"`); got != 1 {
		t.Errorf("expected exactly one logger field, got %d in %q", got, out)
	}
}

func alwaysErrFunc() error {
	return errors.New("a test error") //nolint:goerr113
}

func testLoggerConfig(t *testing.T, cfg logger.Log) string {
	t.Helper()
	// keep default std out
	stdout := os.Stdout
	stderr := os.Stderr

	// capture stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	os.Stderr = w

	err := logger.Init(cfg)
	if err != nil {
		t.Error(err)
	}

	log.Info().Msg("this info message should be seen...")
	log.Error().Err(alwaysErrFunc()).Msg("this err message should be seen...")
	log.Trace().Err(alwaysErrFunc()).Msg("this trace message should be seen...")

	outC := make(chan string)
	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		_, err = io.Copy(&buf, r)
		if err != nil {
			t.Error(err)
		}
		outC <- buf.String()
	}()

	// back to normal state
	_ = w.Close()
	os.Stdout = stdout // restoring the real stdout
	os.Stderr = stderr // restoring the real stderr
	out := <-outC

	return out
}

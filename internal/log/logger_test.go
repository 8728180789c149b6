package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		present []string
		absent  []string
	}{
		{
			name:    "debug keeps everything",
			level:   LevelDebug,
			present: []string{"DEBUG: fetching theme", "INFO: theme stored", "WARN: flagged theme", "ERROR: upload failed"},
		},
		{
			name:    "warn drops debug and info",
			level:   LevelWarn,
			present: []string{"WARN: flagged theme", "ERROR: upload failed"},
			absent:  []string{"DEBUG", "INFO"},
		},
		{
			name:    "error keeps only errors",
			level:   LevelError,
			present: []string{"ERROR: upload failed"},
			absent:  []string{"DEBUG", "INFO", "WARN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "raven.log")
			logger, err := New(logPath, tt.level)
			require.NoError(t, err)

			logger.Debug("fetching %s", "theme")
			logger.Info("theme stored")
			logger.Warn("flagged theme")
			logger.Error("upload failed")
			require.NoError(t, logger.Close())

			content := readLog(t, logPath)
			for _, want := range tt.present {
				require.Contains(t, content, want)
			}
			for _, unwanted := range tt.absent {
				require.NotContains(t, content, unwanted)
			}
		})
	}
}

func TestLogger_LinePrefix(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "raven.log")
	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)

	logger.Info("hello")
	require.NoError(t, logger.Close())

	line := strings.TrimSpace(readLog(t, logPath))
	require.True(t, strings.HasPrefix(line, "["), "line %q should start with a timestamp", line)
	require.True(t, strings.HasSuffix(line, "INFO: hello"), "line %q", line)
}

func TestLogger_Permissions(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	logPath := filepath.Join(logDir, "raven.log")

	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	logger.Info("test message")
	require.NoError(t, logger.Close())

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	dirInfo, err := os.Stat(logDir)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700)|os.ModeDir, dirInfo.Mode())
}

func TestLogger_FixesLoosePermissions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "raven.log")
	require.NoError(t, os.WriteFile(logPath, []byte("old\n"), 0644))

	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLogger_AppendMode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "raven.log")

	first, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	first.Info("first message")
	require.NoError(t, first.Close())

	second, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	second.Info("second message")
	require.NoError(t, second.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "first message")
	require.Contains(t, content, "second message")
}

func TestLogger_SetEnabled(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "raven.log")
	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)

	logger.Info("enabled message")
	logger.SetEnabled(false)
	logger.Info("disabled message")
	logger.SetEnabled(true)
	logger.Info("enabled again")
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "enabled message")
	require.NotContains(t, content, "disabled message")
	require.Contains(t, content, "enabled again")
}

func TestLogger_WritesAfterCloseAreDropped(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "raven.log")
	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
	logger.Error("too late")

	require.NotContains(t, readLog(t, logPath), "too late")
}

func TestLogger_Writer(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "raven.log")
	logger, err := New(logPath, LevelDebug)
	require.NoError(t, err)

	n, err := logger.Writer(LevelWarn).Write([]byte("message from writer\n"))
	require.NoError(t, err)
	require.Equal(t, len("message from writer\n"), n)
	require.NoError(t, logger.Close())

	require.Contains(t, readLog(t, logPath), "WARN: message from writer")
}

func TestLogger_NilReceiver(t *testing.T) {
	var logger *Logger

	require.NotPanics(t, func() {
		logger.SetEnabled(true)
		logger.Debug("test")
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
	require.NoError(t, logger.Close())
}

func TestNew_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "afile")
	require.NoError(t, os.WriteFile(filePath, nil, 0600))

	_, err := New(filepath.Join(filePath, "subdir", "raven.log"), LevelInfo)
	require.Error(t, err)
	require.Contains(t, err.Error(), "create log directory")

	if os.Getuid() == 0 {
		t.Skip("root can write into read-only directories")
	}
	readOnly := filepath.Join(tmpDir, "readonly")
	require.NoError(t, os.Mkdir(readOnly, 0500))

	_, err = New(filepath.Join(readOnly, "raven.log"), LevelInfo)
	require.Error(t, err)
	require.Contains(t, err.Error(), "open log file")
}

func TestGlobalLogger(t *testing.T) {
	saved := GetLogger()
	t.Cleanup(func() { SetDefault(saved) })

	SetDefault(nil)
	require.NotPanics(t, func() {
		Debug("test debug")
		Info("test info")
		Warn("test warn")
		Error("test error")
	})
	require.NoError(t, Close())
	require.Nil(t, GetLogger())

	logPath := filepath.Join(t.TempDir(), "raven.log")
	logger, err := New(logPath, LevelDebug)
	require.NoError(t, err)
	SetDefault(logger)
	require.Same(t, logger, GetLogger())

	Debug("debug message")
	Info("info message")
	require.NoError(t, Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "DEBUG: debug message")
	require.Contains(t, content, "INFO: info message")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"Info", LevelInfo},
		{"warn", LevelWarn},
		{"ERROR", LevelError},
		{"verbose", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(99).String())
}

func TestNopLogger(t *testing.T) {
	nop := NopLogger{}
	require.NotPanics(t, func() {
		nop.Debug("test %s", "debug")
		nop.Info("test %s", "info")
		nop.Warn("test %s", "warn")
		nop.Error("test %s", "error")
	})
	require.NoError(t, nop.Close())
}

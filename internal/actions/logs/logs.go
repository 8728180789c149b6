package logs

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/raven-themes/raven/internal/dispatchers"
)

const defaultLogLimit = 50

// View shows the last N lines of the log file
func View(args []string, flags *dispatchers.ParsedFlags) error {
	return view(args, flags, DefaultDeps())
}

func view(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	jsonOutput := flags.Has("--json")
	logPath, err := deps.LogFilePath()
	if err != nil {
		return err
	}

	info, err := deps.Stat(logPath)
	if os.IsNotExist(err) {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(deps.Styler.Muted("No log file found at " + logPath))
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}

	if info.Size() == 0 {
		if jsonOutput {
			_, _ = deps.Println("[]")
		} else {
			_, _ = deps.Println(deps.Styler.Muted("Log file is empty"))
		}
		return nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	lines := strings.Split(string(content), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	limit := flags.Int("--limit", defaultLogLimit)
	if limit <= 0 {
		limit = defaultLogLimit
	}

	start := 0
	if len(lines) > limit {
		start = len(lines) - limit
	}

	if jsonOutput {
		return viewJSON(lines[start:], deps)
	}

	for _, line := range lines[start:] {
		_, _ = deps.Println(colorizeLogLine(line, deps))
	}

	return nil
}

// logEntryRegex matches log lines like: [2026-01-29 10:30:45] INFO: download nord: ok
var logEntryRegex = regexp.MustCompile(`^\[([^\]]+)\]\s+(DEBUG|INFO|WARN|ERROR):\s*(.*)$`)

type logEntry struct {
	Timestamp string `json:"timestamp,omitempty"`
	Level     string `json:"level,omitempty"`
	Message   string `json:"message"`
	Raw       bool   `json:"raw,omitempty"`
}

func parseLine(line string) logEntry {
	matches := logEntryRegex.FindStringSubmatch(line)
	if matches == nil {
		return logEntry{Message: line, Raw: true}
	}
	return logEntry{Timestamp: matches[1], Level: matches[2], Message: matches[3]}
}

func viewJSON(lines []string, deps Deps) error {
	entries := make([]logEntry, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		entries = append(entries, parseLine(line))
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, _ = deps.Println(string(data))
	return nil
}

// Tail follows the log file in real time
func Tail(args []string, flags *dispatchers.ParsedFlags) error {
	return tail(args, flags, DefaultDeps())
}

func tail(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	logPath, err := deps.LogFilePath()
	if err != nil {
		return err
	}

	file, err := deps.OpenFile(logPath, os.O_RDONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	_, _ = deps.Println(deps.Styler.Muted("Following logs at " + logPath + " (Ctrl+C to stop)"))
	_, _ = deps.Println("")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return follow(ctx, bufio.NewReader(file), 500*time.Millisecond, deps)
}

// follow prints lines from r as they appear until ctx is done.
func follow(ctx context.Context, r *bufio.Reader, every time.Duration, deps Deps) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	var partial string
	for {
		line, err := r.ReadString('\n')
		partial += line
		if err == nil {
			_, _ = deps.Println(colorizeLogLine(strings.TrimSuffix(partial, "\n"), deps))
			partial = ""
			continue
		}
		if err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Clear empties the log file
func Clear(args []string, flags *dispatchers.ParsedFlags) error {
	return clear(args, flags, DefaultDeps())
}

func clear(_ []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	logPath, err := deps.LogFilePath()
	if err != nil {
		return err
	}

	if err := deps.WriteFile(logPath, []byte{}, 0600); err != nil {
		return fmt.Errorf("clear log file: %w", err)
	}

	_, _ = deps.Println(deps.Styler.Success("Log file cleared"))
	return nil
}

func colorizeLogLine(line string, deps Deps) string {
	switch parseLine(line).Level {
	case "ERROR":
		return deps.Styler.Error(line)
	case "WARN":
		return deps.Styler.Warning(line)
	case "INFO":
		return deps.Styler.Info(line)
	case "DEBUG":
		return deps.Styler.Muted(line)
	}
	return line
}

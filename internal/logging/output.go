package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// resolveOutput turns a log output spec into a writer. Supported forms:
//   - "" or "stderr" - os.Stderr
//   - "stdout" - os.Stdout (unsafe with the stdio transport)
//   - "file:///path" or a bare path - append to that file
func resolveOutput(output string) (io.Writer, error) {
	switch {
	case output == "" || output == "stderr":
		return os.Stderr, nil
	case output == "stdout":
		return os.Stdout, nil
	case strings.HasPrefix(output, "file://"):
		return openLogFile(strings.TrimPrefix(output, "file://"))
	case !strings.Contains(output, "://"):
		return openLogFile(output)
	default:
		return nil, fmt.Errorf("unsupported log output: %s", output)
	}
}

func openLogFile(path string) (io.Writer, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return file, nil
}

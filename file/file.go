package file

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stdio is the path that means stdin or stdout.
const Stdio = "-"

func ReadChart(path string, stdin io.Reader) (string, error) {
	if path == "" || path == Stdio {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading chart: %w", err)
	}
	return string(data), nil
}

// WriteChart writes text to path, creating parent directories, or to
// stdout when path is empty or "-".
func WriteChart(path string, text string, stdout io.Writer) error {
	if path == "" || path == Stdio {
		_, err := io.WriteString(stdout, text)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	return nil
}

// OutputPath mirrors path from under srcRoot to under dstRoot.
func OutputPath(srcRoot, dstRoot, path string) (string, error) {
	rel, err := filepath.Rel(srcRoot, path)
	if err != nil {
		return "", err
	}
	return filepath.Join(dstRoot, rel), nil
}

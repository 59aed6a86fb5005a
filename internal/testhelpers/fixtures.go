package testhelpers

import (
	"os"
	"path/filepath"
)

func LoadFixture(name string) ([]byte, error) {
	filepath := filepath.Join("..", "testhelpers", "fixtures", name)
	return os.ReadFile(filepath)
}

// WriteTempCSV writes content into dir and returns the file path.
func WriteTempCSV(dir, name, content string) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

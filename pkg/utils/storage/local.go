package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes files under a media root on the local disk. The stored
// reference is the path relative to the server root, e.g.
// "media/properties/<name>", which the app serves statically.
type LocalStorage struct {
	Root string // e.g. "./media"
}

func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("could not create media root: %v", err)
	}
	return &LocalStorage{Root: root}, nil
}

func (l *LocalStorage) Save(data []byte, dir, filename string) (string, error) {
	target := filepath.Join(l.Root, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("could not create upload dir: %v", err)
	}

	path := filepath.Join(target, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("could not write file: %v", err)
	}

	ref := filepath.ToSlash(filepath.Join(filepath.Base(l.Root), dir, filename))
	return ref, nil
}

func (l *LocalStorage) Delete(ref string) error {
	// Ref is "media/<dir>/<file>"; strip the media segment back off.
	rel := strings.TrimPrefix(ref, filepath.Base(l.Root)+"/")
	return os.Remove(filepath.Join(l.Root, filepath.FromSlash(rel)))
}

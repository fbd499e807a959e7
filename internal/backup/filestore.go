package backup

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/arssetima/codex/internal/entities"
)

// FileStore writes snapshot documents to the backup directory and reads
// them back. Compressed backups get a .json.gz suffix and are detected by
// it on read.
type FileStore struct {
	dir      string
	compress bool
}

func NewFileStore(dir string, compress bool) *FileStore {
	return &FileStore{dir: dir, compress: compress}
}

// Write serializes the snapshot into a timestamped file and returns its
// path. The directory is created on first use.
func (f *FileStore) Write(snapshot *entities.Snapshot) (string, error) {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	data, err := EncodeSnapshot(snapshot)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	name := fmt.Sprintf("arssetima_backup_%d.json", time.Now().UnixMilli())
	if f.compress {
		name += ".gz"
		data, err = gzipBytes(data)
		if err != nil {
			return "", fmt.Errorf("compress snapshot: %w", err)
		}
	}

	path := filepath.Join(f.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup file: %w", err)
	}
	return path, nil
}

// Read loads and parses a snapshot file, transparently decompressing
// .gz files.
func (f *FileStore) Read(path string) (*entities.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup file: %w", err)
	}
	if strings.HasSuffix(path, ".gz") {
		data, err = gunzipBytes(data)
		if err != nil {
			return nil, fmt.Errorf("decompress backup file: %w", err)
		}
	}
	return ParseSnapshot(data)
}

func gzipBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gunzipBytes(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

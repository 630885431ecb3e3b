package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/google/renameio/v2"

	"reellog/internal/catalog"
	"reellog/internal/logging"
	"reellog/internal/movie"
)

// ErrPersist marks a failed write of a catalog file.
var ErrPersist = errors.New("persist catalog")

// PersistError names the catalog file a failed write was aimed at. It
// matches ErrPersist under errors.Is.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrPersist, e.Path, e.Err)
}

func (e *PersistError) Unwrap() []error {
	return []error{ErrPersist, e.Err}
}

// File is the on-disk backing of one catalog.
type File struct {
	path   string
	logger *slog.Logger
}

// NewFile binds a backing file path. A nil logger discards output.
func NewFile(path string, logger *slog.Logger) *File {
	return &File{
		path:   path,
		logger: logging.NewComponentLogger(logger, "storage").With(logging.String(logging.FieldPath, path)),
	}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Load reads the file. A missing file yields no records and no error.
func (f *File) Load() ([]movie.Record, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			f.logger.Debug("catalog file absent; starting empty")
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", f.path, err)
	}
	defer file.Close()

	records, skipped, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	f.logger.Debug("catalog file loaded",
		logging.Int(logging.FieldCount, len(records)),
		logging.Int("skipped_lines", skipped),
	)
	return records, nil
}

// Save replaces the file with records. It satisfies catalog.Store.
func (f *File) Save(records []movie.Record) error {
	if err := f.write(records); err != nil {
		f.logger.Warn("catalog save failed; in-memory list is kept", logging.Error(err))
		return &PersistError{Path: f.path, Err: err}
	}
	f.logger.Debug("catalog saved", logging.Int(logging.FieldCount, len(records)))
	return nil
}

func (f *File) write(records []movie.Record) error {
	pending, err := renameio.NewPendingFile(f.path, renameio.WithPermissions(0o644), renameio.WithExistingPermissions())
	if err != nil {
		return err
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			f.logger.Debug("cleanup pending catalog file", logging.Error(err))
		}
	}()

	if err := Encode(pending, records); err != nil {
		return err
	}
	return pending.CloseAtomicallyReplace()
}

// Load reads the records stored at path.
func Load(path string) ([]movie.Record, error) {
	return NewFile(path, nil).Load()
}

// Save writes every record of c to path.
func Save(c *catalog.Catalog, path string) error {
	return NewFile(path, nil).Save(c.Enumerate())
}

// Open loads the file at path into a new catalog that writes through to it.
func Open(name, path string, logger *slog.Logger) (*catalog.Catalog, error) {
	file := NewFile(path, logger)
	records, err := file.Load()
	if err != nil {
		return nil, err
	}
	return catalog.NewWithRecords(name, file, records), nil
}

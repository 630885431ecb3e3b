package library

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"reellog/internal/catalog"
	"reellog/internal/config"
	"reellog/internal/logging"
	"reellog/internal/movie"
	"reellog/internal/storage"
)

// ErrLocked reports that another process holds the data directory.
var ErrLocked = errors.New("another reellog session is using the data directory")

// Paths names the files a Library reads and writes.
type Paths struct {
	Watched string
	ToWatch string
	Lock    string
}

func (p Paths) file(list List) string {
	if list == Watched {
		return p.Watched
	}
	return p.ToWatch
}

// PathsFromConfig resolves the library files from configuration.
func PathsFromConfig(cfg *config.Config) Paths {
	return Paths{
		Watched: cfg.WatchedPath(),
		ToWatch: cfg.ToWatchPath(),
		Lock:    cfg.LockPath(),
	}
}

// Match is a search hit tagged with the list it came from.
type Match struct {
	List   List
	Record movie.Record
}

// Library is the process-wide session over both lists.
type Library struct {
	paths     Paths
	catalogs  map[List]*catalog.Catalog
	lock      *flock.Flock
	logger    *slog.Logger
	sessionID string
	closed    bool
}

// Open acquires the data directory lock and loads both lists.
func Open(paths Paths, logger *slog.Logger) (*Library, error) {
	sessionID := uuid.NewString()
	logger = logging.NewComponentLogger(logging.WithSession(logger, sessionID), "library")

	lock := flock.New(paths.Lock)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", paths.Lock, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", ErrLocked, paths.Lock)
	}

	lib := &Library{
		paths:     paths,
		catalogs:  make(map[List]*catalog.Catalog, 2),
		lock:      lock,
		logger:    logger,
		sessionID: sessionID,
	}
	for _, list := range Lists() {
		c, err := storage.Open(list.String(), paths.file(list), logger)
		if err != nil {
			_ = lock.Unlock()
			return nil, fmt.Errorf("load %s list: %w", list, err)
		}
		lib.catalogs[list] = c
	}

	logger.Info("library opened",
		logging.Int("watched", lib.catalogs[Watched].Len()),
		logging.Int("to_watch", lib.catalogs[ToWatch].Len()),
	)
	return lib, nil
}

// SessionID returns the correlation ID stamped on this session's logs.
func (l *Library) SessionID() string {
	return l.sessionID
}

// Catalog returns the catalog behind list.
func (l *Library) Catalog(list List) (*catalog.Catalog, error) {
	if !list.valid() {
		return nil, fmt.Errorf("unknown list %d", int(list))
	}
	return l.catalogs[list], nil
}

// Add appends a record to list. The record is kept in memory even when the
// returned error reports a failed save.
func (l *Library) Add(list List, title, description string, duration int) error {
	c, err := l.Catalog(list)
	if err != nil {
		return err
	}
	rec := movie.New(title, description, duration)
	err = c.Add(rec)
	l.logger.Info("movie added",
		logging.String(logging.FieldList, list.String()),
		logging.String(logging.FieldTitle, rec.Title),
		logging.Int(logging.FieldCount, c.Len()),
	)
	return err
}

// Remove deletes the first record titled title from list. It returns an
// error wrapping catalog.ErrNotFound when nothing matches.
func (l *Library) Remove(list List, title string) (movie.Record, error) {
	c, err := l.Catalog(list)
	if err != nil {
		return movie.Record{}, err
	}
	removed, err := c.Remove(title)
	if errors.Is(err, catalog.ErrNotFound) {
		l.logger.Debug("remove found no match",
			logging.String(logging.FieldList, list.String()),
			logging.String(logging.FieldTitle, title),
		)
		return movie.Record{}, err
	}
	l.logger.Info("movie removed",
		logging.String(logging.FieldList, list.String()),
		logging.String(logging.FieldTitle, removed.Title),
	)
	return removed, err
}

// Search looks in Watched first, then To Watch.
func (l *Library) Search(title string) (Match, bool) {
	for _, list := range Lists() {
		if rec, ok := l.catalogs[list].Search(title); ok {
			return Match{List: list, Record: rec}, true
		}
	}
	return Match{}, false
}

// List returns the records of list in display order.
func (l *Library) List(list List) []movie.Record {
	c, err := l.Catalog(list)
	if err != nil {
		return nil
	}
	return c.Enumerate()
}

// Move removes the first record titled title from one list and appends it to
// the other. Persistence failures are joined; the move stands in memory.
func (l *Library) Move(title string, from, to List) (movie.Record, error) {
	if from == to {
		return movie.Record{}, fmt.Errorf("cannot move %q within the %s list", title, from)
	}
	dst, err := l.Catalog(to)
	if err != nil {
		return movie.Record{}, err
	}
	rec, removeErr := l.Remove(from, title)
	if errors.Is(removeErr, catalog.ErrNotFound) {
		return movie.Record{}, removeErr
	}
	if removeErr != nil && rec.Title == "" {
		return movie.Record{}, removeErr
	}
	addErr := dst.Add(rec)
	l.logger.Info("movie moved",
		logging.String(logging.FieldTitle, rec.Title),
		logging.String("from", from.String()),
		logging.String("to", to.String()),
	)
	return rec, errors.Join(removeErr, addErr)
}

// SaveAll writes both lists.
func (l *Library) SaveAll() error {
	var errs []error
	for _, list := range Lists() {
		if err := l.catalogs[list].Flush(); err != nil {
			errs = append(errs, fmt.Errorf("save %s list: %w", list, err))
		}
	}
	return errors.Join(errs...)
}

// Close saves both lists and releases the lock. It is safe to call twice.
func (l *Library) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	saveErr := l.SaveAll()
	var unlockErr error
	if err := l.lock.Unlock(); err != nil {
		unlockErr = fmt.Errorf("release lock: %w", err)
	}
	l.logger.Debug("library closed")
	return errors.Join(saveErr, unlockErr)
}

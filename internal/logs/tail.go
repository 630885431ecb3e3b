package logs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"reellog/internal/logging"
)

const pollInterval = 250 * time.Millisecond

// Query selects which log lines Read returns.
type Query struct {
	// Offset < 0 starts from the last Limit lines; otherwise reading resumes
	// at this byte offset.
	Offset int64
	Limit  int
	// Session keeps only lines stamped with this session ID.
	Session string
	// Wait > 0 blocks until a matching line arrives or Wait elapses.
	Wait time.Duration
}

// Page is a batch of lines plus the offset to resume from.
type Page struct {
	Lines  []string
	Offset int64
}

// Read returns log lines from path. A missing file is an empty page.
func Read(ctx context.Context, path string, q Query) (Page, error) {
	page := Page{Offset: q.Offset}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			page.Offset = 0
			return page, nil
		}
		return page, fmt.Errorf("stat log file: %w", err)
	}
	if info.IsDir() {
		return page, fmt.Errorf("log path %q is a directory", path)
	}

	match := sessionFilter(q.Session)
	if q.Offset < 0 {
		lines, offset, err := readLast(path, q.Limit, match)
		if err != nil {
			return page, err
		}
		return Page{Lines: lines, Offset: offset}, nil
	}

	offset := q.Offset
	if offset > info.Size() {
		offset = info.Size()
	}
	if q.Wait <= 0 {
		lines, next, err := readFrom(path, offset, match)
		return Page{Lines: lines, Offset: next}, err
	}
	return waitForLines(ctx, path, offset, q.Wait, match)
}

// sessionFilter matches both the console form (session_id=ID) and the JSON
// form ("session_id":"ID").
func sessionFilter(session string) func(string) bool {
	session = strings.TrimSpace(session)
	if session == "" {
		return func(string) bool { return true }
	}
	console := logging.FieldSessionID + "=" + session
	structured := fmt.Sprintf("%q:%q", logging.FieldSessionID, session)
	return func(line string) bool {
		return strings.Contains(line, console) || strings.Contains(line, structured)
	}
}

// eachLine calls fn for every newline-terminated line of r and returns the
// bytes consumed. A trailing line still being written is left unread.
func eachLine(r io.Reader, fn func(string)) (int64, error) {
	br := bufio.NewReader(r)
	var consumed int64
	for {
		line, err := br.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return consumed, nil
			}
			return consumed, err
		}
		consumed += int64(len(line))
		fn(strings.TrimRight(line, "\r\n"))
	}
}

func readLast(path string, limit int, match func(string) bool) ([]string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	var ring []string
	if limit > 0 {
		ring = make([]string, 0, limit)
	}
	offset, err := eachLine(file, func(line string) {
		if !match(line) {
			return
		}
		if limit > 0 && len(ring) == limit {
			copy(ring, ring[1:])
			ring = ring[:limit-1]
		}
		ring = append(ring, line)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("read log file: %w", err)
	}
	return ring, offset, nil
}

func readFrom(path string, offset int64, match func(string) bool) ([]string, int64, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return nil, 0, fmt.Errorf("seek log file: %w", err)
	}

	var lines []string
	consumed, err := eachLine(file, func(line string) {
		if match(line) {
			lines = append(lines, line)
		}
	})
	if err != nil {
		return nil, 0, fmt.Errorf("read log file: %w", err)
	}
	return lines, offset + consumed, nil
}

func waitForLines(ctx context.Context, path string, offset int64, wait time.Duration, match func(string) bool) (Page, error) {
	deadline := time.Now().Add(wait)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		lines, next, err := readFrom(path, offset, match)
		if err != nil {
			return Page{Offset: offset}, err
		}
		offset = next
		if len(lines) > 0 || time.Now().After(deadline) {
			return Page{Lines: lines, Offset: offset}, nil
		}

		select {
		case <-ctx.Done():
			return Page{Offset: offset}, ctx.Err()
		case <-ticker.C:
		}
	}
}

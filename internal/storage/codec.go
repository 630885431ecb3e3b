package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reellog/internal/movie"
)

// ErrMalformed marks a line that does not decode into a record.
var ErrMalformed = errors.New("malformed record line")

const fieldCount = 3

// Serialize renders rec as one newline-terminated line.
func Serialize(rec movie.Record) string {
	return rec.Title + movie.FieldDelimiter + rec.Description + movie.FieldDelimiter + strconv.Itoa(rec.Duration) + "\n"
}

// Deserialize parses one line (with or without its line terminator).
func Deserialize(line string) (movie.Record, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, movie.FieldDelimiter)
	if len(fields) != fieldCount {
		return movie.Record{}, fmt.Errorf("%w: want %d fields, got %d", ErrMalformed, fieldCount, len(fields))
	}
	title, description := fields[0], fields[1]
	if title == "" || description == "" {
		return movie.Record{}, fmt.Errorf("%w: empty title or description", ErrMalformed)
	}
	duration, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return movie.Record{}, fmt.Errorf("%w: duration %q", ErrMalformed, fields[2])
	}
	return movie.New(title, description, duration), nil
}

// Encode writes every record in order.
func Encode(w io.Writer, records []movie.Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := bw.WriteString(Serialize(rec)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// maxLineBytes bounds one record line. Longer lines are drained and skipped.
const maxLineBytes = 1 << 20

// Decode reads records until EOF. Malformed, overlong and blank lines are
// skipped and counted; only read errors are returned.
func Decode(r io.Reader) ([]movie.Record, int, error) {
	var (
		records []movie.Record
		skipped int
	)
	br := bufio.NewReader(r)
	for {
		line, tooLong, err := readLine(br)
		if err != nil && !errors.Is(err, io.EOF) {
			return records, skipped, err
		}
		switch {
		case tooLong:
			skipped++
		case strings.TrimSpace(line) == "":
		default:
			if rec, decodeErr := Deserialize(line); decodeErr != nil {
				skipped++
			} else {
				records = append(records, rec)
			}
		}
		if err != nil {
			return records, skipped, nil
		}
	}
}

// readLine returns the next line without its terminator. A line past
// maxLineBytes is consumed through its newline and reported as tooLong.
func readLine(br *bufio.Reader) (string, bool, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, err := br.ReadSlice('\n')
		if !tooLong {
			if len(buf)+len(chunk) > maxLineBytes+1 {
				tooLong, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return strings.TrimRight(string(buf), "\r\n"), tooLong, err
	}
}

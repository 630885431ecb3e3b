package movie

import "fmt"

// Record is one movie entry.
type Record struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration_minutes"`
}

// New builds a Record from already validated fields.
func New(title, description string, duration int) Record {
	return Record{Title: title, Description: description, Duration: duration}
}

// DurationLabel renders the duration the way listings show it.
func (r Record) DurationLabel() string {
	return fmt.Sprintf("%d minutes", r.Duration)
}

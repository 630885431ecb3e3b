package library

import (
	"fmt"
	"strings"
)

// List identifies one of the two movie lists.
type List int

const (
	Watched List = iota
	ToWatch
)

// Lists returns every list in search order.
func Lists() []List {
	return []List{Watched, ToWatch}
}

func (l List) String() string {
	switch l {
	case Watched:
		return "Watched"
	case ToWatch:
		return "To Watch"
	default:
		return fmt.Sprintf("List(%d)", int(l))
	}
}

// Slug is the command-line spelling of the list.
func (l List) Slug() string {
	switch l {
	case Watched:
		return "watched"
	case ToWatch:
		return "towatch"
	default:
		return ""
	}
}

// ParseList accepts the slug and a few common spellings.
func ParseList(value string) (List, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "watched", "seen":
		return Watched, nil
	case "towatch", "to-watch", "to_watch", "to watch", "watchlist":
		return ToWatch, nil
	default:
		return 0, fmt.Errorf("unknown list %q (expected watched or towatch)", value)
	}
}

func (l List) valid() bool {
	return l == Watched || l == ToWatch
}

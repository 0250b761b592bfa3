package parser

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hoursRe   = regexp.MustCompile(`(?i)(\d+)\s*(hour|hours|hr)`)
	minutesRe = regexp.MustCompile(`(?i)(\d+)\s*(min|minute|minutes)`)
)

type heuristic struct{}

// NewHeuristic returns the deterministic regex parser.
// Hours take precedence over minutes; "meeting" anywhere in the text adds the meeting tag.
func NewHeuristic() Parser {
	return heuristic{}
}

func (heuristic) Parse(_ context.Context, text string) (ParsedTask, error) {
	pt := ParsedTask{
		Title:       strings.TrimSpace(text),
		Description: text,
	}

	if m := hoursRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n <= math.MaxInt/60 {
			pt.DurationMinutes = n * 60
		}
	}
	// Minutes only count when the hours scan produced nothing.
	if pt.DurationMinutes == 0 {
		if m := minutesRe.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				pt.DurationMinutes = n
			}
		}
	}

	if strings.Contains(strings.ToLower(text), "meeting") {
		pt.Tags = []string{"meeting"}
	}

	return pt, nil
}

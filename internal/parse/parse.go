// Package parse recognizes the structured lines of a daily postmortem
// report: arrival/departure times, break durations, and issue references.
// Anything else is ignored; the format is tolerant by design.
package parse

import (
	"regexp"
	"strconv"
)

// Kind tags the structural classification of a report line.
type Kind int

const (
	Ignored Kind = iota
	Start
	Stop
	Break
)

// Line is the result of classifying one report line. Hour, Minute and
// Meridiem are set for Start and Stop lines; BreakMinutes for Break lines.
type Line struct {
	Kind         Kind
	Hour         int
	Minute       int
	Meridiem     byte // 'a' or 'p'
	BreakMinutes int
}

// Time grammar: H:MM, optional space, a|p, optional trailing m.
// The label text is case-sensitive.
var (
	startRe = regexp.MustCompile(`^(?:Start|Arrival) Time:\s+(\d{1,2}):(\d{2}) ?([ap])m?`)
	stopRe  = regexp.MustCompile(`^(?:Stop|Departure) Time:\s+(\d{1,2}):(\d{2}) ?([ap])m?`)
	breakRe = regexp.MustCompile(`^Lunch/Breaks:\s+(?:(\d+):)?(\d+)\s*min`)
	issueRe = regexp.MustCompile(`#(\d+)`)
)

// Classify inspects one line and returns its structural classification.
// A line that also contains issue references is still classified by its
// structural match; IssueRefs runs independently on every line.
func Classify(line string) Line {
	if m := startRe.FindStringSubmatch(line); m != nil {
		return timeLine(Start, m)
	}
	if m := stopRe.FindStringSubmatch(line); m != nil {
		return timeLine(Stop, m)
	}
	if m := breakRe.FindStringSubmatch(line); m != nil {
		hours := 0
		if m[1] != "" {
			hours = atoi(m[1])
		}
		return Line{Kind: Break, BreakMinutes: hours*60 + atoi(m[2])}
	}
	return Line{Kind: Ignored}
}

// IssueRefs returns every #-prefixed digit run in the line, left to right.
// References can appear on any line, any number of times.
func IssueRefs(line string) []string {
	var ids []string
	for _, m := range issueRe.FindAllStringSubmatch(line, -1) {
		ids = append(ids, m[1])
	}
	return ids
}

func timeLine(kind Kind, m []string) Line {
	return Line{
		Kind:     kind,
		Hour:     atoi(m[1]),
		Minute:   atoi(m[2]),
		Meridiem: m[3][0],
	}
}

// atoi is safe here: every argument is a \d+ capture.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

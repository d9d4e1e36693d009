package parse_test

import (
	"reflect"
	"testing"

	"github.com/pmcli/postmortem/internal/parse"
)

func TestClassifyStartStop(t *testing.T) {
	tests := []struct {
		line string
		want parse.Line
	}{
		{"Start Time: 9:00am", parse.Line{Kind: parse.Start, Hour: 9, Minute: 0, Meridiem: 'a'}},
		{"Arrival Time: 8:45 am", parse.Line{Kind: parse.Start, Hour: 8, Minute: 45, Meridiem: 'a'}},
		{"Start Time: 12:30p", parse.Line{Kind: parse.Start, Hour: 12, Minute: 30, Meridiem: 'p'}},
		{"Stop Time: 5:30pm", parse.Line{Kind: parse.Stop, Hour: 5, Minute: 30, Meridiem: 'p'}},
		{"Departure Time: 11:15 p", parse.Line{Kind: parse.Stop, Hour: 11, Minute: 15, Meridiem: 'p'}},
		{"Departure Time: 6:05pm (left early)", parse.Line{Kind: parse.Stop, Hour: 6, Minute: 5, Meridiem: 'p'}},
	}
	for _, tt := range tests {
		got := parse.Classify(tt.line)
		if got != tt.want {
			t.Errorf("Classify(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestClassifyBreak(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"Lunch/Breaks: 30 min", 30},
		{"Lunch/Breaks: 45 mins", 45},
		{"Lunch/Breaks: 15 minutes (coffee)", 15},
		{"Lunch/Breaks: 1:00 min", 60},
		{"Lunch/Breaks: 1:30 min", 90},
		{"Lunch/Breaks: 0 min", 0},
	}
	for _, tt := range tests {
		got := parse.Classify(tt.line)
		if got.Kind != parse.Break {
			t.Errorf("Classify(%q).Kind = %v, want Break", tt.line, got.Kind)
			continue
		}
		if got.BreakMinutes != tt.want {
			t.Errorf("Classify(%q).BreakMinutes = %d, want %d", tt.line, got.BreakMinutes, tt.want)
		}
	}
}

func TestClassifyIgnored(t *testing.T) {
	lines := []string{
		"",
		"Accomplished:",
		"- fixed the flaky deploy script",
		"start time: 9:00am",         // labels are case-sensitive
		"Start Time: soon",           // no time grammar
		"Lunch/Breaks: none",         // no minute count
		"Worked on #123 all morning", // issue refs alone don't classify
	}
	for _, line := range lines {
		if got := parse.Classify(line); got.Kind != parse.Ignored {
			t.Errorf("Classify(%q) = %+v, want Ignored", line, got)
		}
	}
}

func TestClassifyPrefersStructuralMatch(t *testing.T) {
	// A break line with an incidental reference still classifies as Break.
	got := parse.Classify("Lunch/Breaks: 20 min waiting on #55")
	if got.Kind != parse.Break || got.BreakMinutes != 20 {
		t.Errorf("Classify = %+v, want Break(20)", got)
	}
}

func TestIssueRefs(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"Worked on #123", []string{"123"}},
		{"#42, then #17 and back to #42", []string{"42", "17", "42"}},
		{"Lunch/Breaks: 20 min waiting on #55", []string{"55"}},
		{"no references here", nil},
		{"# 99 is not a reference", nil},
		{"trailing hash #", nil},
	}
	for _, tt := range tests {
		got := parse.IssueRefs(tt.line)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("IssueRefs(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

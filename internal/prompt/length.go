package prompt

import (
	"fmt"
	"strings"
)

// LengthProfile splits a target length into per-section word targets.
type LengthProfile struct {
	Introduction int
	Objectives   int
	Body         int
	Examples     int
	Summary      int
}

var lengthProfiles = map[Length]LengthProfile{
	Length1000: {Introduction: 100, Objectives: 50, Body: 650, Examples: 150, Summary: 50},
	Length1500: {Introduction: 150, Objectives: 100, Body: 950, Examples: 200, Summary: 100},
	Length2000: {Introduction: 200, Objectives: 100, Body: 1300, Examples: 300, Summary: 100},
	Length2500: {Introduction: 250, Objectives: 150, Body: 1600, Examples: 350, Summary: 150},
}

// Profile returns the breakdown for l.
func Profile(l Length) LengthProfile {
	return lengthProfiles[l]
}

// Total is the sum of all section targets.
func (p LengthProfile) Total() int {
	return p.Introduction + p.Objectives + p.Body + p.Examples + p.Summary
}

func (p LengthProfile) breakdown() string {
	lines := []string{
		fmt.Sprintf("- Pendahuluan: ~%d kata", p.Introduction),
		fmt.Sprintf("- Tujuan Pembelajaran: ~%d kata", p.Objectives),
		fmt.Sprintf("- Uraian Materi: ~%d kata", p.Body),
		fmt.Sprintf("- Contoh/Studi Kasus: ~%d kata", p.Examples),
		fmt.Sprintf("- Ringkasan: ~%d kata", p.Summary),
	}
	return strings.Join(lines, "\n")
}

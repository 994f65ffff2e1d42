package citer

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// FormatAccessDate formats t as day/month/year without zero padding,
// e.g. "3/7/2024".
func FormatAccessDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// FormatHarvard formats a reference as a Harvard-style citation:
//
//	Author (Year) Title. Site. Available at: URL (Accessed: d/m/yyyy).
//
// Empty author and site are omitted.
func FormatHarvard(ref *Reference) string {
	var b strings.Builder

	if ref.Author != "" {
		b.WriteString(ref.Author)
		b.WriteString(" ")
	}
	b.WriteString("(")
	b.WriteString(ref.Year)
	b.WriteString(") ")
	b.WriteString(ref.Title)
	b.WriteString(".")
	if ref.Site != "" && ref.Site != ref.Author {
		b.WriteString(" ")
		b.WriteString(ref.Site)
		b.WriteString(".")
	}
	b.WriteString(" Available at: ")
	b.WriteString(ref.URL)
	if !ref.AccessedAt.IsZero() {
		b.WriteString(" (Accessed: ")
		b.WriteString(FormatAccessDate(ref.AccessedAt))
		b.WriteString(")")
	}
	b.WriteString(".")

	return b.String()
}

// FormatBibliography formats references as a reference list sorted by
// author, then year. The input slice is not modified.
func FormatBibliography(refs []*Reference) string {
	if len(refs) == 0 {
		return ""
	}

	sorted := make([]*Reference, len(refs))
	copy(sorted, refs)
	sort.SliceStable(sorted, func(i, j int) bool {
		ai, aj := strings.ToLower(sorted[i].Author), strings.ToLower(sorted[j].Author)
		if ai != aj {
			return ai < aj
		}
		return sorted[i].Year < sorted[j].Year
	})

	lines := make([]string, 0, len(sorted))
	for _, ref := range sorted {
		lines = append(lines, FormatHarvard(ref))
	}
	return strings.Join(lines, "\n")
}

// Package ingest turns pasted text and uploaded files into a name list.
//
// Names are separated by line breaks or commas. Surrounding whitespace is
// trimmed and empty entries are dropped; nothing else is normalized, so
// "Ann" and "ann" are different names.
package ingest

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// separators splits on any run of CR, LF or comma.
var separators = regexp.MustCompile(`[\r\n,]+`)

// Parse splits raw text into trimmed, non-empty names in input order.
func Parse(text string) []string {
	fields := separators.Split(text, -1)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		if name := strings.TrimSpace(f); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Duplicates returns every name that occurs more than once, once each,
// in order of first occurrence.
func Duplicates(names []string) []string {
	return lo.FindDuplicates(names)
}

// HasDuplicates reports whether any name occurs more than once.
func HasDuplicates(names []string) bool {
	return len(lo.Uniq(names)) != len(names)
}

// RemoveDuplicates keeps the first occurrence of each name, preserving order.
func RemoveDuplicates(names []string) []string {
	return lo.Uniq(names)
}

// Join renders names as editor text, one per line.
func Join(names []string) string {
	return strings.Join(names, "\n")
}

var sampleNames = []string{
	"王小明", "李大華", "張美麗", "陳志強", "林佩芬",
	"周杰倫", "蔡依林", "吳曉東", "鄭博文", "許芳瑜",
	"何守正", "謝和弦", "郭台銘", "馬雲", "庫克",
	"馬斯克", "比爾蓋茲", "賈伯斯", "蘇姿丰", "黃仁勳",
}

// SampleNames returns a fresh copy of the built-in demo list.
func SampleNames() []string {
	return append([]string(nil), sampleNames...)
}

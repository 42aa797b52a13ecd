package dates

import (
	"regexp"
	"strings"
)

var numberWords = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	"hundred": 100, "couple": 2, "few": 3, "a": 1, "an": 1,
}

var compoundSplit = regexp.MustCompile(`[-\s]+`)

// ParseNumberWord converts a spelled-out number ("three", "twenty-one",
// "a hundred", "couple") to its value. Compound parts sum left to right;
// "hundred" multiplies whatever accumulated so far, defaulting to one.
func ParseNumberWord(token string) (int, bool) {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return 0, false
	}
	if v, ok := numberWords[t]; ok {
		return v, true
	}

	total := 0
	for _, part := range compoundSplit.Split(t, -1) {
		v, ok := numberWords[part]
		if !ok {
			return 0, false
		}
		if v == 100 {
			if total == 0 {
				total = 1
			}
			total *= 100
			continue
		}
		total += v
	}
	if total == 0 {
		return 0, false
	}
	return total, true
}

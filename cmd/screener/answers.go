package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseAnswers accepts answers as separate arguments, comma separated, or both.
func parseAnswers(args []string) ([]int, error) {
	fields := strings.FieldsFunc(strings.Join(args, " "), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	answers := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("answer %d: %q is not a number", i+1, f)
		}
		answers[i] = v
	}
	return answers, nil
}

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// minutesInput returns a huh.Input for a whole number of minutes in [lo, hi].
func minutesInput(title string, lo, hi int, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Description(fmt.Sprintf("%d-%d", lo, hi)).
		Value(value).
		Validate(validateMinutes(lo, hi))
}

func validateMinutes(lo, hi int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || v < lo || v > hi {
			return fmt.Errorf("enter a number from %d to %d", lo, hi)
		}
		return nil
	}
}

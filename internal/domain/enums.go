package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDifficulty is returned when a difficulty string is not one of
// easy, medium or hard.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

type Mode string

const (
	ModeStudy Mode = "study"
	ModeBreak Mode = "break"
)

// Label returns the heading shown above the clock.
func (m Mode) Label() string {
	if m == ModeBreak {
		return "Break Time"
	}
	return "Study Time"
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the accepted difficulties in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ValidDifficulties is the canonical set of accepted difficulty strings.
var ValidDifficulties = map[string]bool{
	"easy": true, "medium": true, "hard": true,
}

// ParseDifficulty normalizes s and returns the matching Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if !ValidDifficulties[norm] {
		return "", fmt.Errorf("%w: %q (want easy, medium or hard)", ErrInvalidDifficulty, s)
	}
	return Difficulty(norm), nil
}

func (d Difficulty) Valid() bool {
	return ValidDifficulties[string(d)]
}

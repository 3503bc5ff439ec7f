package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*difficultyValue)(nil)
	_ pflag.Value = (*subjectsValue)(nil)
)

// difficultyValue is a pflag.Value restricted to easy, medium and hard.
// The zero value means "not set".
type difficultyValue struct {
	d *domain.Difficulty
}

func newDifficultyValue(p *domain.Difficulty) *difficultyValue {
	return &difficultyValue{d: p}
}

func (v *difficultyValue) String() string {
	if v.d == nil {
		return ""
	}
	return string(*v.d)
}

func (v *difficultyValue) Set(s string) error {
	d, err := domain.ParseDifficulty(s)
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v *difficultyValue) Type() string { return "difficulty" }

// subjectSpec is one --subject argument.
type subjectSpec struct {
	Name       string
	Difficulty domain.Difficulty
}

// subjectsValue collects repeated --subject name[:difficulty] flags.
// Difficulty defaults to medium.
type subjectsValue struct {
	specs *[]subjectSpec
}

func (v *subjectsValue) String() string {
	if v.specs == nil {
		return ""
	}
	parts := make([]string, len(*v.specs))
	for i, s := range *v.specs {
		parts[i] = s.Name + ":" + string(s.Difficulty)
	}
	return strings.Join(parts, ",")
}

func (v *subjectsValue) Set(s string) error {
	spec, err := parseSubjectSpec(s)
	if err != nil {
		return err
	}
	*v.specs = append(*v.specs, spec)
	return nil
}

func (v *subjectsValue) Type() string { return "name:difficulty" }

func parseSubjectSpec(s string) (subjectSpec, error) {
	name, diff, hasDiff := s, "", false
	if i := strings.LastIndex(s, ":"); i >= 0 {
		name, diff, hasDiff = s[:i], s[i+1:], true
	}
	if strings.TrimSpace(name) == "" {
		return subjectSpec{}, fmt.Errorf("subject name is empty in %q", s)
	}
	spec := subjectSpec{Name: strings.TrimSpace(name), Difficulty: domain.DifficultyMedium}
	if hasDiff {
		d, err := domain.ParseDifficulty(diff)
		if err != nil {
			return subjectSpec{}, err
		}
		spec.Difficulty = d
	}
	return spec, nil
}

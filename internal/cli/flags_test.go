package cli

import (
	"testing"

	"github.com/alexanderramin/studytimer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSubjectSpec(t *testing.T) {
	tests := []struct {
		in      string
		want    subjectSpec
		wantErr bool
	}{
		{in: "Latin", want: subjectSpec{Name: "Latin", Difficulty: domain.DifficultyMedium}},
		{in: "Latin:hard", want: subjectSpec{Name: "Latin", Difficulty: domain.DifficultyHard}},
		{in: " Latin : Easy", want: subjectSpec{Name: "Latin", Difficulty: domain.DifficultyEasy}},
		{in: "Ch. 3: Cells:easy", want: subjectSpec{Name: "Ch. 3: Cells", Difficulty: domain.DifficultyEasy}},
		{in: ":hard", wantErr: true},
		{in: "Latin:extreme", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSubjectSpec(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubjectsValue_Repeats(t *testing.T) {
	var specs []subjectSpec
	v := &subjectsValue{specs: &specs}

	require.NoError(t, v.Set("Latin:hard"))
	require.NoError(t, v.Set("Art"))
	assert.Equal(t, "Latin:hard,Art:medium", v.String())
	assert.Equal(t, "name:difficulty", v.Type())
}

func TestDifficultyValue(t *testing.T) {
	var d domain.Difficulty
	v := newDifficultyValue(&d)

	require.NoError(t, v.Set("Medium"))
	assert.Equal(t, domain.DifficultyMedium, d)
	assert.Equal(t, "medium", v.String())
	assert.ErrorIs(t, v.Set("nope"), domain.ErrInvalidDifficulty)
}

package queryparser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, DefaultDuration(CategoryErrand))
	assert.Equal(t, time.Hour, DefaultDuration(CategoryMeeting))
	assert.Equal(t, time.Hour, DefaultDuration(CategoryAppointment))
	assert.Equal(t, time.Hour, DefaultDuration(CategoryTask))
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw   string
		texts []string
		want  Category
	}{
		{raw: "Errand", want: CategoryErrand},
		{raw: " meeting ", want: CategoryMeeting},
		{raw: "", texts: []string{"pick up dry cleaning"}, want: CategoryErrand},
		{raw: "unknown", texts: []string{"dentist on friday"}, want: CategoryAppointment},
		{raw: "", texts: []string{"Call with the vendor"}, want: CategoryMeeting},
		{raw: "", texts: []string{"write the report"}, want: CategoryTask},
		{raw: "", texts: []string{"workshop tomorrow at 3pm"}, want: CategoryTask},
		{raw: "", texts: []string{"meeting at the bank"}, want: CategoryMeeting},
		{raw: "", texts: []string{"Dentist, then the pharmacy"}, want: CategoryAppointment},
		{raw: "", texts: []string{"go to the post office"}, want: CategoryErrand},
		{raw: "", texts: []string{"1:1 with Sam"}, want: CategoryMeeting},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseCategory(tt.raw, tt.texts...), "raw=%q texts=%v", tt.raw, tt.texts)
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	tests := map[string]string{
		"```json\n{\"a\":1}\n```":   `{"a":1}`,
		"```\n{\"a\":1}```":         `{"a":1}`,
		"Here you go: {\"a\":1} ok": `{"a":1}`,
		`{"a":1}`:                   `{"a":1}`,
		"no json here":              "no json here",
	}

	for in, want := range tests {
		assert.Equal(t, want, sanitizeJSONResponse(in), "input %q", in)
	}
}

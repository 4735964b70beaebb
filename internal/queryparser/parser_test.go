package queryparser

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-assistant/internal/validation"
	"calendar-assistant/pkg/llmprovider"
	"calendar-assistant/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testZone = "America/Los_Angeles"

type fakeProvider struct {
	reply string
	err   error
	calls int
	last  *llmprovider.Request
}

func (f *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Content: llmprovider.TextMessage(llmprovider.RoleAssistant, f.reply)}, nil
}

func (f *fakeProvider) Name() string  { return "fake" }
func (f *fakeProvider) Model() string { return "fake-model" }

func newTestParser(t *testing.T, fp *fakeProvider) Parser {
	t.Helper()
	p, err := New(log.NewNop(), fp, Options{Timezone: testZone})
	require.NoError(t, err)
	return p
}

// Wednesday 2024-03-20 11:10 in Los Angeles.
func reference(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(testZone)
	require.NoError(t, err)
	return time.Date(2024, 3, 20, 11, 10, 0, 0, loc)
}

func TestParse_EmptyQueryIsRejectedWithoutCall(t *testing.T) {
	fp := &fakeProvider{}
	p := newTestParser(t, fp)

	for _, q := range []string{"", "   \t\n"} {
		out, err := p.Parse(context.Background(), q, reference(t))
		require.NoError(t, err)
		assert.Equal(t, Rejected{Reason: "query is empty"}, out)
	}
	assert.Zero(t, fp.calls)
}

func TestParse_GibberishIsRejected(t *testing.T) {
	fp := &fakeProvider{reply: `{"error": {"reason": "no discernible purpose"}}`}
	p := newTestParser(t, fp)

	out, err := p.Parse(context.Background(), "asdfghjkl", reference(t))
	require.NoError(t, err)
	assert.Equal(t, Rejected{Reason: "no discernible purpose"}, out)
	assert.Equal(t, 1, fp.calls)
}

func TestParse_RejectionWithoutReason(t *testing.T) {
	fp := &fakeProvider{reply: `{"error": {}}`}
	p := newTestParser(t, fp)

	out, err := p.Parse(context.Background(), "hmm", reference(t))
	require.NoError(t, err)
	assert.Equal(t, Rejected{Reason: reasonUninterpreted}, out)
}

func TestParse_ExplicitDurationWins(t *testing.T) {
	fp := &fakeProvider{reply: `{
		"event": {
			"summary": "Meeting with John",
			"description": "",
			"start": {"dateTime": "2024-03-25T10:00:00-07:00", "timeZone": "America/Los_Angeles"},
			"end": {"dateTime": "2024-03-25T10:45:00-07:00", "timeZone": "America/Los_Angeles"}
		},
		"category": "meeting"
	}`}
	p := newTestParser(t, fp)

	out, err := p.Parse(context.Background(), "Meeting with John on Monday at 10am for 45 minutes", reference(t))
	require.NoError(t, err)

	parsed, ok := out.(Parsed)
	require.True(t, ok, "expected Parsed, got %T", out)
	assert.Equal(t, CategoryMeeting, parsed.Category)

	event, err := validation.Validate(parsed.Event)
	require.NoError(t, err)
	assert.Contains(t, event.Title, "Meeting")
	assert.Equal(t, 45*time.Minute, event.Duration())
	assert.Equal(t, testZone, event.Start.Zone)
	assert.Equal(t, testZone, event.End.Zone)
}

func TestParse_MissingEndUsesCategoryDefault(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		query string
		want  time.Duration
	}{
		{
			name:  "errand category",
			reply: `{"event": {"summary": "Cleaning session", "start": {"dateTime": "2024-03-21T09:00:00-07:00", "timeZone": "America/Los_Angeles"}}, "category": "errand"}`,
			query: "schedule a cleaning session tomorrow morning",
			want:  2 * time.Hour,
		},
		{
			name:  "meeting category",
			reply: `{"event": {"summary": "Team sync", "start": {"dateTime": "2024-03-21T09:00:00-07:00", "timeZone": "America/Los_Angeles"}}, "category": "meeting"}`,
			query: "team sync tomorrow morning",
			want:  time.Hour,
		},
		{
			name:  "category inferred from keywords",
			reply: `{"event": {"summary": "Grocery shopping", "start": {"dateTime": "2024-03-21T18:00:00", "timeZone": "America/Los_Angeles"}, "end": {"timeZone": "America/Los_Angeles"}}}`,
			query: "go grocery shopping tomorrow evening",
			want:  2 * time.Hour,
		},
		{
			name:  "substring of errand keyword is not an errand",
			reply: `{"event": {"summary": "Workshop", "start": {"dateTime": "2024-03-21T15:00:00", "timeZone": "America/Los_Angeles"}}}`,
			query: "workshop tomorrow at 3pm",
			want:  time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, &fakeProvider{reply: tt.reply})

			out, err := p.Parse(context.Background(), tt.query, reference(t))
			require.NoError(t, err)
			parsed, ok := out.(Parsed)
			require.True(t, ok)

			event, err := validation.Validate(parsed.Event)
			require.NoError(t, err)
			assert.Equal(t, tt.want, event.Duration())
			assert.True(t, event.End.Instant.After(event.Start.Instant))
		})
	}
}

func TestParse_CodeFencedReply(t *testing.T) {
	fp := &fakeProvider{reply: "Sure!\n```json\n{\"event\": {\"title\": \"Dentist\", \"start\": {\"dateTime\": \"2024-03-22T10:00:00-07:00\", \"timeZone\": \"America/Los_Angeles\"}, \"end\": {\"dateTime\": \"2024-03-22T11:00:00-07:00\", \"timeZone\": \"America/Los_Angeles\"}}, \"category\": \"appointment\"}\n```"}
	p := newTestParser(t, fp)

	out, err := p.Parse(context.Background(), "dentist friday", reference(t))
	require.NoError(t, err)
	parsed, ok := out.(Parsed)
	require.True(t, ok)
	assert.Equal(t, "Dentist", parsed.Event.EventTitle())
	assert.Equal(t, CategoryAppointment, parsed.Category)
}

func TestParse_FencesInsideJSONStringsAreKept(t *testing.T) {
	fp := &fakeProvider{reply: "{\"event\": {\"title\": \"Deploy\", \"description\": \"run ```make deploy``` first\", \"start\": {\"dateTime\": \"2024-03-22T10:00:00-07:00\", \"timeZone\": \"America/Los_Angeles\"}, \"end\": {\"dateTime\": \"2024-03-22T11:00:00-07:00\", \"timeZone\": \"America/Los_Angeles\"}}, \"category\": \"task\"}"}
	p := newTestParser(t, fp)

	out, err := p.Parse(context.Background(), "deploy friday at 10, run ```make deploy``` first", reference(t))
	require.NoError(t, err)
	parsed, ok := out.(Parsed)
	require.True(t, ok)
	assert.Equal(t, "run ```make deploy``` first", parsed.Event.Description)
	assert.Equal(t, CategoryTask, parsed.Category)
}

func TestParse_MalformedReplies(t *testing.T) {
	replies := map[string]string{
		"not json":     "I cannot help with that",
		"empty":        "",
		"neither arm":  `{"something": "else"}`,
		"both arms":    `{"event": {"summary": "x"}, "error": {"reason": "y"}}`,
		"wrong shapes": `{"event": "tomorrow"}`,
	}

	for name, reply := range replies {
		t.Run(name, func(t *testing.T) {
			p := newTestParser(t, &fakeProvider{reply: reply})

			out, err := p.Parse(context.Background(), "lunch tomorrow", reference(t))
			assert.Nil(t, out)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestParse_ProviderFailure(t *testing.T) {
	fp := &fakeProvider{err: errors.New("openai: service unavailable")}
	p := newTestParser(t, fp)

	out, err := p.Parse(context.Background(), "lunch tomorrow", reference(t))
	assert.Nil(t, out)
	require.ErrorIs(t, err, ErrCompletionFailed)
	assert.Contains(t, err.Error(), "openai: service unavailable")
	assert.Equal(t, 1, fp.calls)
}

func TestParse_RequestShape(t *testing.T) {
	fp := &fakeProvider{reply: `{"error": {"reason": "x"}}`}
	p := newTestParser(t, fp)

	_, err := p.Parse(context.Background(), "lunch with Ana", reference(t))
	require.NoError(t, err)
	require.NotNil(t, fp.last)

	assert.Equal(t, llmprovider.FormatJSON, fp.last.ResponseFormat)
	assert.Zero(t, fp.last.Temperature)
	require.NotNil(t, fp.last.SystemInstruction)
	assert.Contains(t, fp.last.SystemInstruction.Text(), testZone)

	user := fp.last.Messages[0].Text()
	assert.Contains(t, user, `"lunch with Ana"`)
	assert.Contains(t, user, "2024-03-20T11:10:00-07:00")
	assert.Contains(t, user, "next whole hour: 2024-03-20T12:00:00-07:00")
	assert.Contains(t, user, "tomorrow morning: 2024-03-21T09:00:00-07:00")
	assert.Contains(t, user, "tomorrow evening: 2024-03-21T18:00:00-07:00")
	assert.Contains(t, user, "in one week: 2024-03-27")
	assert.Contains(t, user, "next monday: 2024-03-25")
	assert.Contains(t, user, "next wednesday: 2024-03-27")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(log.NewNop(), nil, Options{Timezone: testZone})
	assert.Error(t, err)

	_, err = New(log.NewNop(), &fakeProvider{}, Options{Timezone: "Nowhere/Zone"})
	assert.Error(t, err)
}

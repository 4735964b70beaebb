package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-assistant/pkg/log"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	model     string
	err       error
	delay     time.Duration
	response  *Response
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

func userRequest(text string) *Request {
	return &Request{Messages: []Message{TextMessage(RoleUser, text)}}
}

func TestGenerateContent_Success(t *testing.T) {
	expected := &Response{
		Content:      TextMessage(RoleAssistant, "Hello"),
		ProviderName: "primary",
		ModelName:    "primary-model",
		Usage:        &Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
	}
	primary := &mockProvider{name: "primary", model: "primary-model", response: expected}

	manager := NewManager(primary, &Config{Timeout: time.Second}, log.NewNop())

	resp, err := manager.GenerateContent(context.Background(), userRequest("Hello"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Content.Text() != "Hello" {
		t.Errorf("Expected content 'Hello', got: %s", resp.Content.Text())
	}
	if primary.callCount != 1 {
		t.Errorf("Expected provider to be called once, got: %d", primary.callCount)
	}
}

func TestGenerateContent_FailureIsNotRetried(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m", err: errors.New("upstream exploded")}

	manager := NewManager(primary, &Config{}, log.NewNop())

	_, err := manager.GenerateContent(context.Background(), userRequest("Hello"))
	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "primary" {
		t.Errorf("Expected *ProviderError for primary, got: %v", err)
	}
	if err.Error() != "provider primary: upstream exploded" {
		t.Errorf("Unexpected error text: %s", err.Error())
	}
	if primary.callCount != 1 {
		t.Errorf("Expected exactly one call, got: %d", primary.callCount)
	}
}

func TestGenerateContent_Timeout(t *testing.T) {
	slow := &mockProvider{name: "slow", model: "m", delay: time.Second}

	manager := NewManager(slow, &Config{Timeout: 20 * time.Millisecond}, log.NewNop())

	_, err := manager.GenerateContent(context.Background(), userRequest("Hello"))
	if !errors.Is(err, ErrProviderTimeout) {
		t.Fatalf("Expected ErrProviderTimeout, got: %v", err)
	}
}

func TestGenerateContent_InvalidInput(t *testing.T) {
	manager := NewManager(nil, nil, log.NewNop())
	if _, err := manager.GenerateContent(context.Background(), userRequest("x")); !errors.Is(err, ErrNoProviderConfigured) {
		t.Errorf("Expected ErrNoProviderConfigured, got: %v", err)
	}

	manager = NewManager(&mockProvider{name: "p"}, nil, log.NewNop())
	if _, err := manager.GenerateContent(context.Background(), &Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got: %v", err)
	}
}

package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name       string
	model      string
	shouldFail bool
	response   *Response
	callCount  int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.shouldFail {
		return nil, errors.New("mock provider error")
	}
	return m.response, nil
}

func (m *mockProvider) Name() string {
	return m.name
}

func (m *mockProvider) Model() string {
	return m.model
}

// mockLogger is a test implementation of the Logger interface
type mockLogger struct {
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any) {
	m.infoMessages = append(m.infoMessages, template)
}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}

func newTestResponse(provider, model, text string) *Response {
	return &Response{
		Text:         text,
		ProviderName: provider,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  100,
			OutputTokens: 50,
			TotalTokens:  150,
		},
	}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{
		name:     "primary",
		model:    "primary-model",
		response: newTestResponse("primary", "primary-model", "Hello from primary provider"),
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      10 * time.Millisecond,
	}

	manager := NewManager([]Provider{primary}, config, logger)

	resp, err := manager.GenerateContent(context.Background(), &Request{Prompt: "Hello"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text != "Hello from primary provider" {
		t.Errorf("Expected primary response, got: %q", resp.Text)
	}
	if primary.callCount != 1 {
		t.Errorf("Expected 1 call to primary, got: %d", primary.callCount)
	}
	if len(logger.infoMessages) != 1 {
		t.Errorf("Expected 1 success log, got: %d", len(logger.infoMessages))
	}
}

func TestGenerateContent_FallbackToSecondary(t *testing.T) {
	primary := &mockProvider{
		name:       "primary",
		model:      "primary-model",
		shouldFail: true,
	}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "secondary-model",
		response: newTestResponse("secondary", "secondary-model", "Hello from secondary"),
	}

	logger := &mockLogger{}
	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, logger)

	resp, err := manager.GenerateContent(context.Background(), &Request{Prompt: "Hello"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected secondary provider, got: %s", resp.ProviderName)
	}
	if primary.callCount != 2 {
		t.Errorf("Expected 2 retry calls to primary, got: %d", primary.callCount)
	}
	if len(logger.warnMessages) != 1 {
		t.Errorf("Expected 1 failure log, got: %d", len(logger.warnMessages))
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{name: "secondary", model: "m2", shouldFail: true}

	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{Prompt: "Hello"})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "primary", model: "m1", shouldFail: true}
	secondary := &mockProvider{
		name:     "secondary",
		model:    "m2",
		response: newTestResponse("secondary", "m2", "should not be reached"),
	}

	config := &Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}

	manager := NewManager([]Provider{primary, secondary}, config, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{Prompt: "Hello"})
	if err == nil {
		t.Fatal("Expected error when fallback disabled and primary fails")
	}
	if secondary.callCount != 0 {
		t.Errorf("Expected secondary never called, got: %d calls", secondary.callCount)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := NewManager(nil, &Config{RetryAttempts: 1}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{Prompt: "Hello"})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("Expected ErrNoProvidersConfigured, got: %v", err)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &slowProvider{delay: 50 * time.Millisecond}

	config := &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
		MaxTotalTimeout: 10 * time.Millisecond,
	}

	manager := NewManager([]Provider{slow, slow}, config, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{Prompt: "Hello"})
	if err == nil {
		t.Fatal("Expected timeout error")
	}
}

// slowProvider blocks until the context is cancelled
type slowProvider struct {
	delay time.Duration
}

func (s *slowProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	select {
	case <-time.After(s.delay):
		return nil, errors.New("slow provider always fails")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *slowProvider) Name() string  { return "slow" }
func (s *slowProvider) Model() string { return "slow-model" }

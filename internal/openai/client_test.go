package openai

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOpenAIAPI is a mock for the OpenAI API
type MockOpenAIAPI struct {
	mock.Mock
}

func (m *MockOpenAIAPI) CreateEmbeddings(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

func (m *MockOpenAIAPI) CreateChatCompletion(ctx context.Context, messages []ChatMessage) (*ChatResult, error) {
	args := m.Called(ctx, messages)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ChatResult), args.Error(1)
}

func TestClient_GenerateEmbedding_Success(t *testing.T) {
	mockAPI := new(MockOpenAIAPI)
	client := &Client{api: mockAPI}

	ctx := context.Background()
	text := "What did you build at ScoutAI?"
	expectedEmbedding := make([]float32, 1536)
	for i := range expectedEmbedding {
		expectedEmbedding[i] = float32(i) * 0.001
	}

	mockAPI.On("CreateEmbeddings", ctx, text).Return(expectedEmbedding, nil)

	embedding, err := client.GenerateEmbedding(ctx, text)

	assert.NoError(t, err)
	assert.Len(t, embedding, 1536)
	assert.Equal(t, expectedEmbedding, embedding)
	mockAPI.AssertExpectations(t)
}

func TestClient_GenerateEmbedding_EmptyText(t *testing.T) {
	client := NewClient("")

	ctx := context.Background()
	embedding, err := client.GenerateEmbedding(ctx, "")

	assert.Error(t, err)
	assert.Nil(t, embedding)
	assert.Equal(t, ErrEmptyText, err)
}

func TestClient_GenerateEmbedding_WrongDimensions(t *testing.T) {
	mockAPI := new(MockOpenAIAPI)
	client := &Client{api: mockAPI}

	ctx := context.Background()
	text := "Test text"
	wrongEmbedding := make([]float32, 512)

	mockAPI.On("CreateEmbeddings", ctx, text).Return(wrongEmbedding, nil)

	embedding, err := client.GenerateEmbedding(ctx, text)

	assert.Error(t, err)
	assert.Nil(t, embedding)
	assert.Equal(t, ErrWrongDimensions, err)
	mockAPI.AssertExpectations(t)
}

func TestClient_GenerateChatCompletion_Success(t *testing.T) {
	mockAPI := new(MockOpenAIAPI)
	client := &Client{api: mockAPI}

	ctx := context.Background()
	messages := []ChatMessage{
		{Role: "system", Content: "You are a portfolio assistant."},
		{Role: "user", Content: "What is ScoutAI?"},
	}
	expected := &ChatResult{Content: "ScoutAI is a basketball analytics system.", TotalTokens: 120}

	mockAPI.On("CreateChatCompletion", ctx, messages).Return(expected, nil)

	result, err := client.GenerateChatCompletion(ctx, messages)

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	mockAPI.AssertExpectations(t)
}

func TestClient_GenerateChatCompletion_EmptyMessages(t *testing.T) {
	client := NewClient("")

	result, err := client.GenerateChatCompletion(context.Background(), nil)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestClient_GenerateChatCompletion_APIError(t *testing.T) {
	mockAPI := new(MockOpenAIAPI)
	client := &Client{api: mockAPI}

	ctx := context.Background()
	messages := []ChatMessage{{Role: "user", Content: "hi"}}
	apiErr := errors.New("API rate limit exceeded")

	mockAPI.On("CreateChatCompletion", ctx, messages).Return(nil, apiErr)

	result, err := client.GenerateChatCompletion(ctx, messages)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to create chat completion")
	mockAPI.AssertExpectations(t)
}

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key")

	assert.NotNil(t, client)
	assert.NotNil(t, client.api)
}

func TestNewClientFromEnv_NoAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	client, err := NewClientFromEnv()

	assert.Nil(t, client)
	assert.Error(t, err)
	assert.Equal(t, ErrNoAPIKey, err)
}

func TestIsQuotaError(t *testing.T) {
	quotaErr := &openai.APIError{Code: "insufficient_quota", HTTPStatusCode: 429}
	assert.True(t, IsQuotaError(quotaErr))
	assert.True(t, IsQuotaError(errors.Join(errors.New("wrapped"), quotaErr)))

	assert.False(t, IsQuotaError(errors.New("plain error")))
	assert.False(t, IsQuotaError(&openai.APIError{Code: "rate_limit_exceeded"}))
	assert.False(t, IsQuotaError(nil))
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(&openai.APIError{Code: "invalid_api_key"}))
	assert.True(t, IsAuthError(&openai.APIError{HTTPStatusCode: 401}))

	assert.False(t, IsAuthError(&openai.APIError{HTTPStatusCode: 500}))
	assert.False(t, IsAuthError(errors.New("plain error")))
	assert.False(t, IsAuthError(nil))
}

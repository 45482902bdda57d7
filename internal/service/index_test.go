package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nmaffly/portfolio-assistant/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEmbeddingClient mocks the OpenAI embedding client
type MockEmbeddingClient struct {
	mock.Mock
}

func (m *MockEmbeddingClient) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float32), args.Error(1)
}

func testEntry(id string, fields ...domain.Field) domain.KnowledgeEntry {
	if len(fields) == 0 {
		fields = []domain.Field{{Key: "overview", Value: "Something about " + id}}
	}
	return domain.KnowledgeEntry{
		ID:       id,
		Category: domain.CategoryProject,
		Title:    "Title of " + id,
		Aliases:  []string{id + " alias"},
		Keywords: []string{id, "keyword"},
		Data:     fields,
	}
}

func TestEmbeddingText_FieldOrder(t *testing.T) {
	entry := domain.KnowledgeEntry{
		ID:       "project-demo",
		Category: domain.CategoryProject,
		Title:    "Demo",
		Aliases:  []string{"demo app", "the demo"},
		Keywords: []string{"demo", "example"},
		Data: []domain.Field{
			{Key: "overview", Value: "A demo."},
			{Key: "myRole", Value: "Built it."},
		},
	}

	text := EmbeddingText(&entry)

	expected := "Title: Demo\n" +
		"Category: project\n" +
		"Keywords: demo, example\n" +
		"Aliases: demo app, the demo\n" +
		"overview: A demo.\n" +
		"myRole: Built it."
	assert.Equal(t, expected, text)
}

func TestIndexService_BuildIndex_Success(t *testing.T) {
	mockClient := new(MockEmbeddingClient)
	svc := NewIndexService(mockClient)

	ctx := context.Background()
	entries := []domain.KnowledgeEntry{testEntry("a"), testEntry("b")}

	embA := []float32{1, 0, 0}
	embB := []float32{0, 1, 0}
	mockClient.On("GenerateEmbedding", ctx, EmbeddingText(&entries[0])).Return(embA, nil)
	mockClient.On("GenerateEmbedding", ctx, EmbeddingText(&entries[1])).Return(embB, nil)

	index, err := svc.BuildIndex(ctx, entries)

	require.NoError(t, err)
	require.Len(t, index, 2)
	assert.Equal(t, "a", index[0].Entry.ID)
	assert.Equal(t, embA, index[0].Embedding)
	assert.Equal(t, "b", index[1].Entry.ID)
	assert.Equal(t, embB, index[1].Embedding)
	mockClient.AssertExpectations(t)
}

func TestIndexService_BuildIndex_EmbeddingFailureFailsWholeBuild(t *testing.T) {
	mockClient := new(MockEmbeddingClient)
	svc := NewIndexService(mockClient)

	ctx := context.Background()
	entries := []domain.KnowledgeEntry{testEntry("a"), testEntry("b")}

	mockClient.On("GenerateEmbedding", ctx, EmbeddingText(&entries[0])).Return([]float32{1}, nil)
	mockClient.On("GenerateEmbedding", ctx, EmbeddingText(&entries[1])).Return(nil, errors.New("provider down"))

	index, err := svc.BuildIndex(ctx, entries)

	assert.Error(t, err)
	assert.Nil(t, index)
	assert.Contains(t, err.Error(), `entry "b"`)
	mockClient.AssertExpectations(t)
}

func TestIndexService_BuildIndex_InvalidEntry(t *testing.T) {
	mockClient := new(MockEmbeddingClient)
	svc := NewIndexService(mockClient)

	bad := testEntry("bad")
	bad.Data = nil

	index, err := svc.BuildIndex(context.Background(), []domain.KnowledgeEntry{bad})

	assert.Error(t, err)
	assert.Nil(t, index)
	mockClient.AssertNotCalled(t, "GenerateEmbedding")
}

func TestIndexHolder_StartsEmpty(t *testing.T) {
	holder := NewIndexHolder()

	assert.False(t, holder.Ready())
	index, ok := holder.Get()
	assert.False(t, ok)
	assert.Nil(t, index)
}

func TestIndexHolder_PublishOnce(t *testing.T) {
	holder := NewIndexHolder()
	first := []domain.IndexedEntry{{Entry: testEntry("a")}}
	second := []domain.IndexedEntry{{Entry: testEntry("b")}}

	holder.Publish(first)
	holder.Publish(second)

	index, ok := holder.Get()
	require.True(t, ok)
	require.Len(t, index, 1)
	assert.Equal(t, "a", index[0].Entry.ID)
	assert.True(t, holder.Ready())
}

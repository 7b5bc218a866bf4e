package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProviderByModelRoutesGPTToOpenAI(t *testing.T) {
	factory := NewProviderFactory("gem-key", "oai-key")

	provider, err := factory.GetProvider(context.Background(), "gpt-4o-mini", "")
	require.NoError(t, err)
	assert.Equal(t, "openai", provider.Name())
}

func TestGetProviderExplicitOpenAI(t *testing.T) {
	factory := NewProviderFactory("", "oai-key")

	provider, err := factory.GetProvider(context.Background(), "gemini-2.5-flash", "openai")
	require.NoError(t, err)
	assert.Equal(t, "openai", provider.Name())
}

func TestGetProviderUnknownName(t *testing.T) {
	factory := NewProviderFactory("gem-key", "oai-key")

	_, err := factory.GetProvider(context.Background(), "", "anthropic")
	assert.Error(t, err)
}

func TestGetProviderMissingOpenAIKey(t *testing.T) {
	factory := NewProviderFactory("gem-key", "")

	_, err := factory.GetProvider(context.Background(), "gpt-4o", "")
	assert.Error(t, err)
}

func TestGetProviderMissingGeminiKey(t *testing.T) {
	factory := NewProviderFactory("", "oai-key")

	_, err := factory.GetProvider(context.Background(), "gemini-2.5-flash", "")
	assert.Error(t, err)
}

package advice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/localnerve/storefront-studio/internal/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text   string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

func TestStoreAdvicePromptFlags(t *testing.T) {
	gen := &fakeGenerator{text: "  Keep the cart one tap away.  "}
	a := New(gen, nil)
	doc := storefront.NewDefault("u")
	doc.Name = "Moon Shop"

	got := a.StoreAdvice(context.Background(), doc, doc.Navigation[0])
	assert.Equal(t, "Keep the cart one tap away.", got)
	assert.Contains(t, gen.prompt, `Client App Name: "Moon Shop"`)
	assert.Contains(t, gen.prompt, `Current Active Tab: "Home"`)
	assert.Contains(t, gen.prompt, "Cart=true, Offers=true")

	doc.Navigation = doc.Navigation[:2]
	a.StoreAdvice(context.Background(), doc, doc.Navigation[1])
	assert.Contains(t, gen.prompt, "Cart=false, Offers=false")
}

func TestTabAdvicePrompt(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	New(gen, nil).TabAdvice(context.Background(), "Design", "Palette")
	require.True(t, strings.HasPrefix(gen.prompt, "You are an expert UX consultant for Linkora."))
	assert.Contains(t, gen.prompt, `Current Section: "Design"`)
	assert.Contains(t, gen.prompt, `Active Component: "Palette"`)
}

func TestAdviceFallbacks(t *testing.T) {
	assert.Equal(t, UnavailableMessage, New(&fakeGenerator{err: errors.New("quota")}, nil).TabAdvice(context.Background(), "a", "b"))
	assert.Equal(t, EmptyMessage, New(&fakeGenerator{text: " "}, nil).TabAdvice(context.Background(), "a", "b"))
	assert.Equal(t, UnavailableMessage, New(nil, nil).TabAdvice(context.Background(), "a", "b"))
}

func TestGeminiGeneratorNeedsKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "")
	assert.Error(t, err)
}

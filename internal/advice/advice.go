// advice.go
//
// Storefront Studio: a storefront app builder and its configuration persistence service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of storefront-studio.
// storefront-studio is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// storefront-studio is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with storefront-studio.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package advice asks a text generator for short UX suggestions about the
// section or tab being edited. Failures degrade to fixed messages.
package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/localnerve/storefront-studio/internal/storefront"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-3-flash-preview"

	UnavailableMessage = "An error occurred while connecting to the Smart Assistant."
	EmptyMessage       = "No response received."
)

// Generator turns a prompt into text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Advisor builds prompts and never returns an error to the caller.
type Advisor struct {
	Generator Generator
	Logger    *zap.Logger
}

func New(g Generator, logger *zap.Logger) *Advisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Advisor{Generator: g, Logger: logger}
}

// TabPrompt is the prompt for a builder section and the component shown in it.
func TabPrompt(section, component string) string {
	return fmt.Sprintf(`You are an expert UX consultant for Linkora.
Current Section: %q
Active Component: %q

Task: Write a short, professional advice message in English (2-3 sentences) for a user viewing this specific tab.`, section, component)
}

// StorePrompt is the prompt for the app tab currently being configured.
func StorePrompt(doc storefront.Document, active storefront.Tab) string {
	return fmt.Sprintf(`You are an expert UX consultant for Linkora SaaS platform.
Client App Name: %q
Current Active Tab: %q
Features Enabled: Cart=%t, Offers=%t.

Task: Write a short, professional advice message in English (2-3 sentences) for the user currently configuring this tab.`,
		doc.Name, active.Label, doc.HasTab(storefront.ScreenCart), doc.HasTab(storefront.ScreenOffers))
}

func (a *Advisor) TabAdvice(ctx context.Context, section, component string) string {
	return a.ask(ctx, TabPrompt(section, component))
}

func (a *Advisor) StoreAdvice(ctx context.Context, doc storefront.Document, active storefront.Tab) string {
	return a.ask(ctx, StorePrompt(doc, active))
}

func (a *Advisor) ask(ctx context.Context, prompt string) string {
	if a.Generator == nil {
		return UnavailableMessage
	}
	text, err := a.Generator.Generate(ctx, prompt)
	if err != nil {
		a.Logger.Error("advice generation failed", zap.Error(err))
		return UnavailableMessage
	}
	if strings.TrimSpace(text) == "" {
		return EmptyMessage
	}
	return strings.TrimSpace(text)
}

// GeminiGenerator calls the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator returns a generator for apiKey. An empty model selects DefaultModel.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	return &GeminiGenerator{client: c, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

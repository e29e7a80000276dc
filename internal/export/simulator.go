// simulator.go
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

// Package export simulates the project build: it emits a fixed sequence of
// log lines on a timer, then serializes the document as the downloadable
// configuration artifact. No real compilation happens.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/localnerve/storefront-studio/internal/storefront"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DefaultInterval  = 400 * time.Millisecond
	DefaultIncrement = 15
	maxProgress      = 100
)

// ErrBuildInProgress is returned by Run while another build is still ticking.
var ErrBuildInProgress = errors.New("build already in progress")

// Step is one emitted log line.
type Step struct {
	Index    int
	Message  string
	Line     string
	Progress int
	Done     bool
}

// Artifact is the serialized document produced by a finished build.
type Artifact struct {
	FileName string
	// Path is empty when the simulator has no output directory.
	Path string
	Data []byte
}

// Simulator runs one build at a time.
type Simulator struct {
	Interval  time.Duration
	Increment int
	OutDir    string
	Logger    *zap.Logger
	// Clock stamps log lines; time.Now when nil.
	Clock func() time.Time

	running atomic.Bool
}

func NewSimulator(outDir string, interval time.Duration, logger *zap.Logger) *Simulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{Interval: interval, Increment: DefaultIncrement, OutDir: outDir, Logger: logger}
}

// Lines returns the build log for doc, without timestamps.
func Lines(doc storefront.Document) []string {
	palette := "Custom"
	if p, ok := storefront.PaletteByPrimary(doc.Theme.Primary); ok {
		palette = p.Name
	}
	methods := make([]string, len(doc.Payment.Methods))
	for i, m := range doc.Payment.Methods {
		methods[i] = string(m)
	}
	return []string{
		"Initializing Linkora Build Engine...",
		"Validating Project Integrity...",
		"Theme: " + palette,
		"Financial Gateways: " + strings.Join(methods, ", "),
		fmt.Sprintf("SKU Count: %d", doc.SKUCount()),
		"Compiling Relational Data Maps...",
		"Deployment Bundle Ready.",
	}
}

var separatorRun = regexp.MustCompile(`[\s/\\]+`)

// FileName is the artifact name for an app, e.g. "premium_store_config.json".
// Whitespace and path separators become underscores and leading dots are
// dropped, so the name always stays inside the export directory.
func FileName(appName string) string {
	slug := cases.Lower(language.Und).String(appName)
	slug = separatorRun.ReplaceAllString(slug, "_")
	return strings.TrimLeft(slug, ".") + "_config.json"
}

// Run snapshots doc, emits one line per tick with progress advancing by
// Increment (capped at 100), and finalizes on the tick after the last line.
// Cancelling ctx stops the ticker and returns ctx.Err().
func (s *Simulator) Run(ctx context.Context, doc storefront.Document, emit func(Step)) (Artifact, error) {
	if !s.running.CompareAndSwap(false, true) {
		return Artifact{}, ErrBuildInProgress
	}
	defer s.running.Store(false)

	snapshot := doc.Clone()
	lines := Lines(snapshot)
	logger := s.logger().With(zap.String("app", snapshot.ID))

	interval := s.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	increment := s.Increment
	if increment <= 0 {
		increment = DefaultIncrement
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	progress := 0
	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			logger.Info("build cancelled", zap.Int("progress", progress))
			return Artifact{}, ctx.Err()
		case <-ticker.C:
		}

		if i < len(lines) {
			progress = min(progress+increment, maxProgress)
			s.emit(emit, Step{
				Index:    i,
				Message:  lines[i],
				Line:     fmt.Sprintf("[%s] %s", s.now().Format("15:04:05"), lines[i]),
				Progress: progress,
			})
			continue
		}

		artifact, err := s.finalize(snapshot)
		if err != nil {
			logger.Error("build artifact failed", zap.Error(err))
			return Artifact{}, err
		}
		s.emit(emit, Step{Index: i, Progress: maxProgress, Done: true})
		logger.Info("build complete", zap.String("file", artifact.FileName), zap.Int("bytes", len(artifact.Data)))
		return artifact, nil
	}
}

// Running reports whether a build is ticking.
func (s *Simulator) Running() bool {
	return s.running.Load()
}

func (s *Simulator) finalize(doc storefront.Document) (Artifact, error) {
	data, err := storefront.MarshalIndent(doc)
	if err != nil {
		return Artifact{}, fmt.Errorf("encode artifact: %w", err)
	}
	a := Artifact{FileName: FileName(doc.Name), Data: data}
	if s.OutDir == "" {
		return a, nil
	}
	if err := os.MkdirAll(s.OutDir, 0o755); err != nil {
		return Artifact{}, fmt.Errorf("create export dir: %w", err)
	}
	a.Path = filepath.Join(s.OutDir, a.FileName)
	if err := os.WriteFile(a.Path, data, 0o644); err != nil {
		return Artifact{}, fmt.Errorf("write artifact: %w", err)
	}
	return a, nil
}

func (s *Simulator) emit(fn func(Step), st Step) {
	if fn != nil {
		fn(st)
	}
}

func (s *Simulator) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

func (s *Simulator) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// store.go
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

package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/localnerve/storefront-studio/internal/storefront"
	"go.uber.org/zap"
)

var errNoAllocator = errors.New("no id allocator configured")

// Store owns the authoritative document. All changes go through Dispatch;
// readers get deep copies from Snapshot or from subscriber callbacks.
type Store struct {
	mu       sync.Mutex
	doc      storefront.Document
	ids      IDAllocator
	confirm  Confirmer
	logger   *zap.Logger
	subs     map[int]func(storefront.Document)
	nextSub  int
	inflight map[string]bool
}

// Option configures a Store.
type Option func(*Store)

// WithConfirmer sets the gate used for deletes. The default confirms everything.
func WithConfirmer(c Confirmer) Option {
	return func(s *Store) { s.confirm = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore creates a store holding doc. ids may be nil when remote-backed
// actions are never dispatched. A seed that breaks the document invariants
// is rejected.
func NewStore(doc storefront.Document, ids IDAllocator, opts ...Option) (*Store, error) {
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("seed document: %w", err)
	}
	s := &Store{
		doc:      doc.Clone(),
		ids:      ids,
		confirm:  Always,
		logger:   zap.NewNop(),
		subs:     make(map[int]func(storefront.Document)),
		inflight: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Snapshot returns a deep copy of the current document.
func (s *Store) Snapshot() storefront.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Subscribe registers fn to receive a copy of the document after every
// successful change. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(storefront.Document)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// InFlight reports whether a remote request of the given action kind is pending.
func (s *Store) InFlight(kind string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight[kind]
}

// Dispatch applies a and returns the resulting document. On error the
// returned document is the unchanged current one.
func (s *Store) Dispatch(ctx context.Context, a Action) (storefront.Document, error) {
	switch a := a.(type) {
	case CollectionCreate:
		return s.createCollection(ctx, a)
	case ProductCreate:
		return s.createProduct(ctx, a)
	}

	if prompt, ok := destructivePrompt(a); ok {
		// Resolve ids before asking so unknown targets never prompt.
		if _, _, err := reduce(s.Snapshot(), a); err != nil {
			return s.Snapshot(), err
		}
		if !confirmed(s.confirm, prompt) {
			s.logger.Debug("action declined", zap.String("action", a.Kind()))
			return s.Snapshot(), ErrDeclined
		}
	}

	s.mu.Lock()
	out, changed, err := reduce(s.doc, a)
	if err != nil {
		current := s.doc.Clone()
		s.mu.Unlock()
		if isSilentNoop(a, err) {
			s.logger.Debug("offer not saved", zap.String("action", a.Kind()), zap.Error(err))
			return current, nil
		}
		return current, err
	}
	if !changed {
		current := s.doc.Clone()
		s.mu.Unlock()
		s.logger.Debug("guarded action ignored", zap.String("action", a.Kind()))
		return current, nil
	}
	s.doc = out
	return s.commitLocked()
}

func (s *Store) createCollection(ctx context.Context, a CollectionCreate) (storefront.Document, error) {
	name, err := validateCollectionName(a.Name)
	if err != nil {
		return s.Snapshot(), err
	}
	appID, err := s.begin(a.Kind())
	if err != nil {
		return s.Snapshot(), err
	}

	id, err := s.ids.CreateCollection(ctx, appID, name)

	s.mu.Lock()
	delete(s.inflight, a.Kind())
	if err != nil {
		current := s.doc.Clone()
		s.mu.Unlock()
		s.logger.Error("create collection failed", zap.String("name", name), zap.Error(err))
		return current, fmt.Errorf("create collection: %w", err)
	}
	s.doc = appendCollection(s.doc, id, name)
	return s.commitLocked()
}

func (s *Store) createProduct(ctx context.Context, a ProductCreate) (storefront.Document, error) {
	if err := a.Fields.validate(); err != nil {
		return s.Snapshot(), err
	}
	s.mu.Lock()
	exists := s.doc.CollectionIndex(a.CollectionID) >= 0
	s.mu.Unlock()
	if !exists {
		return s.Snapshot(), fmt.Errorf("collection %s: %w", a.CollectionID, ErrNotFound)
	}
	if _, err := s.begin(a.Kind()); err != nil {
		return s.Snapshot(), err
	}

	id, err := s.ids.CreateProduct(ctx, a.CollectionID, a.Fields.product(""))

	s.mu.Lock()
	delete(s.inflight, a.Kind())
	if err != nil {
		current := s.doc.Clone()
		s.mu.Unlock()
		s.logger.Error("create product failed", zap.String("collection", a.CollectionID), zap.Error(err))
		return current, fmt.Errorf("create product: %w", err)
	}
	// The collection may have been deleted while the request was pending.
	out, err := appendProduct(s.doc, a.CollectionID, a.Fields.product(id))
	if err != nil {
		current := s.doc.Clone()
		s.mu.Unlock()
		s.logger.Warn("product created for a removed collection", zap.String("collection", a.CollectionID), zap.String("id", id))
		return current, err
	}
	s.doc = out
	return s.commitLocked()
}

// begin marks kind as in flight and returns the app id for the request.
func (s *Store) begin(kind string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids == nil {
		return "", errNoAllocator
	}
	if s.inflight[kind] {
		return "", ErrRequestInFlight
	}
	s.inflight[kind] = true
	return s.doc.ID, nil
}

// commitLocked must be called with mu held; it releases the lock before
// notifying subscribers.
func (s *Store) commitLocked() (storefront.Document, error) {
	out := s.doc.Clone()
	subs := make([]func(storefront.Document), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(out.Clone())
	}
	return out, nil
}

func destructivePrompt(a Action) (string, bool) {
	switch a.(type) {
	case CollectionDelete:
		return promptDeleteCollection, true
	case ProductDelete:
		return promptDeleteProduct, true
	case OfferDelete:
		return promptDeleteOffer, true
	}
	return "", false
}

func isSilentNoop(a Action, err error) bool {
	switch a.(type) {
	case OfferCreate, OfferUpdate:
		return errors.Is(err, storefront.ErrValidation)
	}
	return false
}

package editor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/localnerve/storefront-studio/internal/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	timeout = time.Second
	tick    = 5 * time.Millisecond
)

type fakeAllocator struct {
	mu       sync.Mutex
	calls    int
	err      error
	nextID   string
	products []storefront.Product
	block    chan struct{}
}

func (f *fakeAllocator) CreateCollection(ctx context.Context, appID, name string) (string, error) {
	return f.issue()
}

func (f *fakeAllocator) CreateProduct(ctx context.Context, collectionID string, p storefront.Product) (string, error) {
	f.mu.Lock()
	f.products = append(f.products, p)
	f.mu.Unlock()
	return f.issue()
}

func (f *fakeAllocator) issue() (string, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.nextID, nil
}

func newStore(t *testing.T, doc storefront.Document, ids IDAllocator, opts ...Option) *Store {
	t.Helper()
	store, err := NewStore(doc, ids, opts...)
	require.NoError(t, err)
	return store
}

func TestCreateCollection(t *testing.T) {
	ids := &fakeAllocator{nextID: "c9"}
	doc := storefront.NewDefault("user1")

	out, id, err := CreateCollection(context.Background(), doc, "  Summer ", ids)
	require.NoError(t, err)
	assert.Equal(t, "c9", id)
	require.Len(t, out.Collections, 2)
	assert.Equal(t, storefront.Collection{ID: "c9", Name: "Summer", Products: []storefront.Product{}}, out.Collections[1])
	assert.Len(t, doc.Collections, 1, "input must not change")
}

func TestCreateCollectionEmptyNameSkipsRemote(t *testing.T) {
	ids := &fakeAllocator{nextID: "c9"}
	_, _, err := CreateCollection(context.Background(), storefront.NewDefault("u"), "   ", ids)
	assert.ErrorIs(t, err, storefront.ErrValidation)
	assert.Zero(t, ids.calls)
}

func TestCreateCollectionRemoteFailureAddsNothing(t *testing.T) {
	ids := &fakeAllocator{err: errors.New("boom")}
	doc := storefront.NewDefault("u")
	out, _, err := CreateCollection(context.Background(), doc, "New", ids)
	require.Error(t, err)
	assert.Equal(t, doc, out)
}

func TestDeleteCollectionCascades(t *testing.T) {
	doc := storefront.NewDefault("u")
	before := doc.Collections[0].Products

	_, err := DeleteCollection(doc, "c1", ConfirmFunc(func(string) bool { return false }))
	assert.ErrorIs(t, err, ErrDeclined)

	out, err := DeleteCollection(doc, "c1", nil)
	require.NoError(t, err)
	for _, c := range out.Collections {
		for _, p := range c.Products {
			for _, gone := range before {
				assert.NotEqual(t, gone.ID, p.ID)
			}
		}
	}
	assert.Empty(t, out.Collections)

	_, err = DeleteCollection(doc, "missing", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateProductNormalizesPrice(t *testing.T) {
	ids := &fakeAllocator{nextID: "p2"}
	doc := storefront.NewDefault("u")

	out, id, err := CreateProduct(context.Background(), doc, "c1", ProductFields{Name: "Ring", Price: "$1,299.99 USD"}, ids)
	require.NoError(t, err)
	assert.Equal(t, "p2", id)
	assert.Equal(t, "$1299.99", out.Collections[0].Products[1].Price)
	assert.Equal(t, "$1299.99", ids.products[0].Price)

	_, _, err = CreateProduct(context.Background(), doc, "nope", ProductFields{Name: "Ring"}, ids)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, ids.calls)
}

// Product edits are applied locally and never reach persistence; only
// creation talks to the allocator.
func TestUpdateProductStaysLocal(t *testing.T) {
	ids := &fakeAllocator{nextID: "x"}
	store := newStore(t, storefront.NewDefault("u"), ids)

	out, err := store.Dispatch(context.Background(), ProductUpdate{
		CollectionID: "c1", ProductID: "p1",
		Fields: ProductFields{Name: "Luxe Watch II", Price: "310"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Luxe Watch II", out.Collections[0].Products[0].Name)
	assert.Equal(t, "$310", out.Collections[0].Products[0].Price)
	assert.Zero(t, ids.calls)
}

func TestDeleteProduct(t *testing.T) {
	doc := storefront.NewDefault("u")
	out, err := DeleteProduct(doc, "c1", "p1", Always)
	require.NoError(t, err)
	assert.Empty(t, out.Collections[0].Products)

	_, err = DeleteProduct(doc, "c1", "p404", Always)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOfferColorIsSnapshotAtSave(t *testing.T) {
	doc := storefront.NewDefault("u")
	out, id, err := CreateOffer(doc, OfferFields{Title: "Flash", Discount: "10%", Code: "FLASH"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "o_"))

	out, err = ApplyPalette(out, "Crimson Red")
	require.NoError(t, err)
	assert.Equal(t, "#4f46e5", out.Offers[1].Color)

	out, err = UpdateOffer(out, id, OfferFields{Title: "Flash", Discount: "15%", Code: "FLASH"})
	require.NoError(t, err)
	assert.Equal(t, "#991b1b", out.Offers[1].Color)
	assert.Equal(t, "15%", out.Offers[1].Discount)
}

func TestCreateOfferValidation(t *testing.T) {
	doc := storefront.NewDefault("u")
	for _, f := range []OfferFields{
		{Discount: "1", Code: "A"},
		{Title: "T", Code: "A"},
		{Title: "T", Discount: "1"},
	} {
		out, _, err := CreateOffer(doc, f)
		assert.ErrorIs(t, err, storefront.ErrValidation)
		assert.Equal(t, doc, out)
	}
}

func TestToggleTabKeepsTwo(t *testing.T) {
	doc := storefront.NewDefault("u")

	doc, changed, err := ToggleTab(doc, "t_orders")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "t_orders", doc.Navigation[4].ID)

	for _, id := range []string{"t_home", "t_store", "t_offers"} {
		doc, _, err = ToggleTab(doc, id)
		require.NoError(t, err)
	}
	require.Len(t, doc.Navigation, 2)

	out, changed, err := ToggleTab(doc, "t_cart")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Len(t, out.Navigation, 2)

	_, _, err = ToggleTab(doc, "t_unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMoveTab(t *testing.T) {
	doc := storefront.NewDefault("u")
	out, err := MoveTab(doc, "t_cart", 0)
	require.NoError(t, err)
	ids := []string{}
	for _, tab := range out.Navigation {
		ids = append(ids, tab.ID)
	}
	assert.Equal(t, []string{"t_cart", "t_home", "t_store", "t_offers"}, ids)

	out, err = MoveTab(doc, "t_home", 99)
	require.NoError(t, err)
	assert.Equal(t, "t_home", out.Navigation[3].ID)
	assert.Equal(t, "t_home", doc.Navigation[0].ID)
}

func TestPaymentToggleScenario(t *testing.T) {
	store := newStore(t, storefront.NewDefault("u"), nil)
	ctx := context.Background()

	for _, m := range []storefront.PaymentMethod{storefront.PaymentPayPal, storefront.PaymentStripe, storefront.PaymentCash} {
		_, err := store.Dispatch(ctx, PaymentToggle{Method: m})
		require.NoError(t, err)
	}
	assert.Equal(t, []storefront.PaymentMethod{storefront.PaymentPayPal}, store.Snapshot().Payment.Methods)

	out, err := store.Dispatch(ctx, PaymentToggle{Method: storefront.PaymentPayPal})
	require.NoError(t, err)
	assert.Equal(t, []storefront.PaymentMethod{storefront.PaymentPayPal}, out.Payment.Methods)
}

func TestStoreRemoteFailureKeepsState(t *testing.T) {
	ids := &fakeAllocator{err: errors.New("503")}
	store := newStore(t, storefront.NewDefault("u"), ids)
	notified := 0
	store.Subscribe(func(storefront.Document) { notified++ })

	_, err := store.Dispatch(context.Background(), CollectionCreate{Name: "Bags"})
	require.Error(t, err)
	assert.Len(t, store.Snapshot().Collections, 1)
	assert.Zero(t, notified)
	assert.False(t, store.InFlight(CollectionCreate{}.Kind()))
}

func TestStoreAppliesResponseToCurrentDocument(t *testing.T) {
	ids := &fakeAllocator{nextID: "c2", block: make(chan struct{})}
	store := newStore(t, storefront.NewDefault("u"), ids)
	ctx := context.Background()

	done := make(chan error)
	go func() {
		_, err := store.Dispatch(ctx, CollectionCreate{Name: "Bags"})
		done <- err
	}()

	require.Eventually(t, func() bool { return store.InFlight("collection.create") }, timeout, tick)

	_, err := store.Dispatch(ctx, CollectionCreate{Name: "Again"})
	assert.ErrorIs(t, err, ErrRequestInFlight)

	_, err = store.Dispatch(ctx, NameSet{Name: "Edited Meanwhile"})
	require.NoError(t, err)

	close(ids.block)
	require.NoError(t, <-done)

	doc := store.Snapshot()
	assert.Equal(t, "Edited Meanwhile", doc.Name)
	require.Len(t, doc.Collections, 2)
	assert.Equal(t, "c2", doc.Collections[1].ID)
}

func TestStoreDeleteConfirmation(t *testing.T) {
	var prompts []string
	answer := false
	store := newStore(t, storefront.NewDefault("u"), nil, WithConfirmer(ConfirmFunc(func(p string) bool {
		prompts = append(prompts, p)
		return answer
	})))
	ctx := context.Background()

	_, err := store.Dispatch(ctx, OfferDelete{ID: "o1"})
	assert.ErrorIs(t, err, ErrDeclined)
	assert.Len(t, store.Snapshot().Offers, 1)

	_, err = store.Dispatch(ctx, OfferDelete{ID: "o404"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, prompts, 1, "unknown ids must not prompt")

	answer = true
	out, err := store.Dispatch(ctx, CollectionDelete{ID: "c1"})
	require.NoError(t, err)
	assert.Empty(t, out.Collections)
	assert.Equal(t, promptDeleteCollection, prompts[1])
}

func TestStoreInvalidOfferIsSilent(t *testing.T) {
	store := newStore(t, storefront.NewDefault("u"), nil)
	notified := 0
	store.Subscribe(func(storefront.Document) { notified++ })

	out, err := store.Dispatch(context.Background(), OfferCreate{Fields: OfferFields{Title: "No code", Discount: "5%"}})
	require.NoError(t, err)
	assert.Len(t, out.Offers, 1)
	assert.Zero(t, notified)
}

func TestStoreSubscribersGetCopies(t *testing.T) {
	store := newStore(t, storefront.NewDefault("u"), nil)
	var got storefront.Document
	unsubscribe := store.Subscribe(func(d storefront.Document) {
		d.Name = "mutated by subscriber"
		got = d
	})

	_, err := store.Dispatch(context.Background(), CardStyleSet{Style: storefront.CardList})
	require.NoError(t, err)
	assert.Equal(t, storefront.CardList, got.Layout.Card)
	assert.Equal(t, storefront.DefaultName, store.Snapshot().Name)

	unsubscribe()
	_, err = store.Dispatch(context.Background(), CardStyleSet{Style: storefront.CardGlass})
	require.NoError(t, err)
	assert.Equal(t, storefront.CardList, got.Layout.Card)
}

func TestStoreRejectsInvalidReplace(t *testing.T) {
	store := newStore(t, storefront.NewDefault("u"), nil)
	bad := storefront.NewDefault("u")
	bad.Payment.Methods = nil

	_, err := store.Dispatch(context.Background(), DocumentReplace{Doc: bad})
	assert.ErrorIs(t, err, storefront.ErrValidation)
	assert.NotEmpty(t, store.Snapshot().Payment.Methods)
}

func TestNewStoreRejectsInvalidSeed(t *testing.T) {
	seed := storefront.NewDefault("u")
	seed.Navigation = seed.Navigation[:1]

	_, err := NewStore(seed, nil)
	assert.ErrorIs(t, err, storefront.ErrValidation)
}

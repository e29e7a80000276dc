package studio

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/localnerve/storefront-studio/internal/advice"
	"github.com/localnerve/storefront-studio/internal/config"
	"github.com/localnerve/storefront-studio/internal/editor"
	"github.com/localnerve/storefront-studio/internal/server"
	"github.com/localnerve/storefront-studio/internal/session"
	"github.com/localnerve/storefront-studio/internal/storefront"
	"github.com/localnerve/storefront-studio/internal/testutil"
	"github.com/localnerve/storefront-studio/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type cannedGenerator string

func (g cannedGenerator) Generate(context.Context, string) (string, error) {
	return string(g), nil
}

func newStudio(t *testing.T) (*Studio, *bytes.Buffer) {
	t.Helper()
	db, cfg := testutil.NewSQLiteDB(t)
	app := server.New(cfg, db, zaptest.NewLogger(t))
	srv := httptest.NewServer(adaptor.FiberApp(app))
	t.Cleanup(srv.Close)

	sess, err := session.Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sess.Close() })

	scfg := &config.StudioConfig{
		APIURL:        srv.URL + "/api",
		ExportDir:     t.TempDir(),
		BuildInterval: time.Millisecond,
	}
	out := &bytes.Buffer{}
	log := zaptest.NewLogger(t)
	s := New(scfg, sess, advice.New(cannedGenerator("Show offers early."), log), log, out)
	s.Confirmer = editor.Always
	return s, out
}

func newStore(t *testing.T, doc storefront.Document, ids editor.IDAllocator) *editor.Store {
	t.Helper()
	store, err := editor.NewStore(doc, ids)
	require.NoError(t, err)
	return store
}

func TestCommandsNeedLogin(t *testing.T) {
	s, _ := newStudio(t)
	ctx := context.Background()

	_, err := s.LoadDocument(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = s.Build(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = s.Publish(ctx, storefront.NewDefault("x"))
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestSignupLoginLogout(t *testing.T) {
	s, out := newStudio(t)
	ctx := context.Background()

	u, err := s.Signup(ctx, "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Contains(t, out.String(), "Signed in as Ada")

	_, err = s.Signup(ctx, "Ada", "ada@example.com", "secret123")
	assert.EqualError(t, err, "Email already registered")

	require.NoError(t, s.Logout())
	_, err = s.CurrentUser()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = s.Login(ctx, "ada@example.com", "wrong")
	assert.EqualError(t, err, "Invalid credentials")

	again, err := s.Login(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID)

	cached, err := s.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", cached.Email)
}

func TestEditPublishReload(t *testing.T) {
	s, out := newStudio(t)
	ctx := context.Background()
	u, err := s.Signup(ctx, "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	doc, err := s.LoadDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, storefront.NewDefault(u.ID.String()), doc)

	store := newStore(t, doc, s.Client)
	_, err = store.Dispatch(ctx, editor.CollectionCreate{Name: "Shoes"})
	require.NoError(t, err)
	edited := store.Snapshot()
	shoes := edited.Collections[len(edited.Collections)-1]
	_, err = store.Dispatch(ctx, editor.ProductCreate{CollectionID: shoes.ID, Fields: editor.ProductFields{Name: "Runner", Price: "120"}})
	require.NoError(t, err)
	require.NoError(t, apply(ctx, store, DesignActions(store.Snapshot(), "Ocean Blue", doc.Layout, storefront.RadiusNone, doc.Theme.Font)))

	v1, err := s.Publish(ctx, store.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, int64(1), v1)
	v2, err := s.Publish(ctx, store.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, int64(2), v2)
	assert.Contains(t, out.String(), "version 2")

	loaded, err := s.LoadDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, store.Snapshot(), loaded)
	assert.Equal(t, "#0369a1", loaded.Theme.Primary)
	assert.Equal(t, storefront.RadiusNone, loaded.Theme.Radius)
	assert.Equal(t, "$120", loaded.Collections[1].Products[0].Price)
}

func TestPreviewAndBuild(t *testing.T) {
	s, out := newStudio(t)
	ctx := context.Background()
	_, err := s.Signup(ctx, "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, s.Preview(ctx, storefront.ScreenCart, 2))
	assert.Contains(t, out.String(), "Luxe Watch x2")

	assert.Error(t, s.Preview(ctx, storefront.Screen("NOWHERE"), 0))

	out.Reset()
	a, err := s.Build(ctx)
	require.NoError(t, err)
	assert.Equal(t, "premium_store_config.json", a.FileName)
	assert.Contains(t, out.String(), "Initializing Linkora Build Engine...")
	assert.Contains(t, out.String(), "Export ready: "+a.Path)

	data, err := os.ReadFile(a.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Premium Store"`)
}

func TestPublishFileTakesOwnership(t *testing.T) {
	s, out := newStudio(t)
	ctx := context.Background()
	u, err := s.Signup(ctx, "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	foreign := storefront.NewDefault("someone-else")
	foreign.Name = "Imported Shop"
	data, err := storefront.MarshalIndent(foreign)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "imported_shop_config.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	_, err = s.PublishFile(ctx, path)
	require.NoError(t, err)

	loaded, err := s.LoadDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Imported Shop", loaded.Name)
	assert.Equal(t, u.ID.String(), loaded.UserID)
	assert.Equal(t, storefront.AppID(u.ID.String()), loaded.ID)

	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Half","layout":"broken"}`), 0o600))
	_, err = s.PublishFile(ctx, path)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Using defaults for:")
}

func TestAdvice(t *testing.T) {
	s, out := newStudio(t)
	ctx := context.Background()

	text, err := s.Advice(ctx, "Design", "Palette")
	require.NoError(t, err)
	assert.Equal(t, "Show offers early.", text)
	assert.Contains(t, out.String(), "Smart Assistant")

	_, err = s.Advice(ctx, "", "")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestTabActionsEnableBeforeDisable(t *testing.T) {
	doc := storefront.NewDefault("u")
	doc.Navigation = doc.Navigation[:2]

	actions := TabActions(doc, []string{"t_offers", "t_cart"})
	assert.Equal(t, []editor.Action{
		editor.TabToggle{ID: "t_offers"},
		editor.TabToggle{ID: "t_cart"},
		editor.TabToggle{ID: "t_home"},
		editor.TabToggle{ID: "t_store"},
	}, actions)

	store := newStore(t, doc, nil)
	require.NoError(t, apply(context.Background(), store, actions))
	got := store.Snapshot().Navigation
	require.Len(t, got, 2)
	assert.Equal(t, "t_offers", got[0].ID)
	assert.Equal(t, "t_cart", got[1].ID)

	out, err := store.Dispatch(context.Background(), editor.TabMove{ID: "t_cart", Index: 0})
	require.NoError(t, err)
	assert.Equal(t, "t_cart", out.Navigation[0].ID)
}

func TestPaymentAndDesignActions(t *testing.T) {
	doc := storefront.NewDefault("u")

	pay := PaymentActions(doc, []storefront.PaymentMethod{storefront.PaymentPayPal})
	store := newStore(t, doc, nil)
	require.NoError(t, apply(context.Background(), store, pay))
	assert.Equal(t, []storefront.PaymentMethod{storefront.PaymentPayPal}, store.Snapshot().Payment.Methods)

	assert.Empty(t, DesignActions(doc, "", doc.Layout, doc.Theme.Radius, doc.Theme.Font))

	layout := doc.Layout
	layout.Navigation = storefront.NavFloating
	actions := DesignActions(doc, "", layout, doc.Theme.Radius, storefront.FontMono)
	assert.Equal(t, []editor.Action{
		editor.NavBarStyleSet{Style: storefront.NavFloating},
		editor.ThemeSet{Field: storefront.ThemeFont, Value: string(storefront.FontMono)},
	}, actions)
}

func TestEditDocumentRegistersSeedCollections(t *testing.T) {
	s, _ := newStudio(t)
	ctx := context.Background()
	u, err := s.Signup(ctx, "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)

	doc, err := s.EditDocument(ctx)
	require.NoError(t, err)
	seed := storefront.NewDefault(u.ID.String())
	require.Len(t, doc.Collections, 1)
	assert.NotEqual(t, seed.Collections[0].ID, doc.Collections[0].ID)
	assert.Equal(t, seed.Collections[0].Products, doc.Collections[0].Products)

	store := newStore(t, doc, s.Client)
	out, err := store.Dispatch(ctx, editor.ProductCreate{
		CollectionID: doc.Collections[0].ID,
		Fields:       editor.ProductFields{Name: "Desk Clock", Price: "45"},
	})
	require.NoError(t, err)
	require.Len(t, out.Collections[0].Products, 2)
	assert.Equal(t, "$45", out.Collections[0].Products[1].Price)

	_, err = s.Publish(ctx, out)
	require.NoError(t, err)
	again, err := s.EditDocument(ctx)
	require.NoError(t, err)
	assert.Equal(t, out.Collections, again.Collections)
}

func TestPreviewSessionFollowsStore(t *testing.T) {
	store := newStore(t, storefront.NewDefault("u"), nil)
	phone := NewPreviewSession(store)
	defer phone.Close()

	assert.Equal(t, storefront.ScreenHome, phone.Frame().Screen)
	assert.Contains(t, choiceValues(phone.Choices()), PreviewExplore)

	_, err := store.Dispatch(context.Background(), editor.NameSet{Name: "Moon Shop"})
	require.NoError(t, err)
	assert.Equal(t, "Moon Shop", phone.Frame().Header.Title)

	phone.Close()
	_, err = store.Dispatch(context.Background(), editor.NameSet{Name: "Sun Shop"})
	require.NoError(t, err)
	assert.Equal(t, "Moon Shop", phone.Frame().Header.Title)
}

func TestPreviewSessionNavigation(t *testing.T) {
	store := newStore(t, storefront.NewDefault("u"), nil)
	phone := NewPreviewSession(store)
	defer phone.Close()

	apply := func(choice string) string {
		t.Helper()
		note, done, err := phone.Apply(choice)
		require.NoError(t, err)
		assert.False(t, done)
		return note
	}

	apply(PreviewAdd)
	apply(PreviewExplore)
	assert.Equal(t, storefront.ScreenCategories, phone.Frame().Screen)
	apply(PreviewAdd)
	assert.Equal(t, 2, phone.Frame().Header.CartBadge)

	apply(PreviewOpenCart)
	assert.Equal(t, storefront.ScreenCart, phone.Frame().Screen)
	assert.Contains(t, choiceValues(phone.Choices()), PreviewCheckout)
	assert.NotEmpty(t, apply(PreviewCheckout))
	apply(PreviewClear)
	assert.Zero(t, phone.Frame().Header.CartBadge)
	assert.NotContains(t, choiceValues(phone.Choices()), PreviewCheckout)

	apply(PreviewTab + "t_offers")
	assert.Equal(t, storefront.ScreenOffers, phone.Frame().Screen)

	apply(PreviewPin + string(storefront.ScreenProfile))
	assert.Equal(t, storefront.ScreenProfile, phone.Frame().Screen)
	assert.Contains(t, choiceValues(phone.Choices()), PreviewUnpin)
	assert.Equal(t, "My Wallet is not available in the preview.", apply(PreviewProfile+"My Wallet"))
	assert.Empty(t, apply(PreviewProfile+"Order History"))
	assert.Equal(t, storefront.ScreenProfile, phone.Frame().Screen, "a pinned screen wins over navigation")
	apply(PreviewUnpin)
	assert.Equal(t, storefront.ScreenOrders, phone.Frame().Screen)
	assert.Contains(t, choiceValues(phone.Choices()), PreviewPin)

	_, _, err := phone.Apply(PreviewTab + "t_missing")
	assert.Error(t, err)
	_, _, err = phone.Apply(PreviewPin + "NOWHERE")
	assert.Error(t, err)

	_, done, err := phone.Apply(PreviewBack)
	require.NoError(t, err)
	assert.True(t, done)
}

func choiceValues(choices []tui.Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Value
	}
	return out
}

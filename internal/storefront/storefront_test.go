package storefront

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestNewDefault(t *testing.T) {
	doc := NewDefault("abcdef-123")

	if doc.ID != "LK_ABCD" {
		t.Errorf("expected id LK_ABCD, got %s", doc.ID)
	}
	if doc.Name != "Premium Store" {
		t.Errorf("unexpected name %q", doc.Name)
	}
	if doc.Theme.Primary != "#4f46e5" || doc.Theme.Radius != RadiusMedium || doc.Theme.Font != FontInter {
		t.Errorf("unexpected theme %+v", doc.Theme)
	}
	if doc.Layout != (Layout{Card: CardGrid, Navigation: NavClassic, Header: HeaderClassic}) {
		t.Errorf("unexpected layout %+v", doc.Layout)
	}
	if !reflect.DeepEqual(doc.Payment.Methods, []PaymentMethod{PaymentStripe, PaymentCash}) {
		t.Errorf("unexpected methods %v", doc.Payment.Methods)
	}
	if len(doc.Navigation) != 4 || doc.Navigation[3].ID != "t_cart" {
		t.Errorf("unexpected navigation %+v", doc.Navigation)
	}
	if doc.SKUCount() != 1 {
		t.Errorf("expected one SKU, got %d", doc.SKUCount())
	}
	if doc.Offers[0].Color != doc.Theme.Primary {
		t.Errorf("offer color %s should match primary", doc.Offers[0].Color)
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("default document should validate: %v", err)
	}
}

func TestAppIDShortUser(t *testing.T) {
	if got := AppID("ab"); got != "LK_AB" {
		t.Errorf("expected LK_AB, got %s", got)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	doc := NewDefault("u1")
	cp := doc.Clone()
	cp.Collections[0].Products[0].Name = "Changed"
	cp.Payment.Methods[0] = PaymentPayPal

	if doc.Collections[0].Products[0].Name != "Luxe Watch" {
		t.Error("clone shares product storage")
	}
	if doc.Payment.Methods[0] != PaymentStripe {
		t.Error("clone shares payment storage")
	}
}

func TestValidate(t *testing.T) {
	doc := NewDefault("u1")
	doc.Navigation = doc.Navigation[:1]
	if err := doc.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error for one tab, got %v", err)
	}

	doc = NewDefault("u1")
	doc.Payment.Methods = []PaymentMethod{PaymentCash, PaymentCash}
	if err := doc.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error for duplicate method, got %v", err)
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"$1,299.99 USD", "$1299.99"},
		{"abc", "$0"},
		{"299", "$299"},
		{"12.5.7", "$12.5"},
		{"", "$0"},
		{".", "$0"},
	}
	for _, c := range cases {
		if got := NormalizePrice(c.raw); got != c.want {
			t.Errorf("NormalizePrice(%q) = %s, want %s", c.raw, got, c.want)
		}
	}
}

func TestApplyThemeChange(t *testing.T) {
	doc := NewDefault("u1")

	out, err := ApplyThemeChange(doc, ThemeRadius, "9999px")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Theme.Radius != RadiusFull {
		t.Errorf("expected FULL, got %s", out.Theme.Radius)
	}
	if doc.Theme.Radius != RadiusMedium {
		t.Error("input document was mutated")
	}

	if _, err := ApplyThemeChange(doc, ThemePrimary, "  "); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error for empty color, got %v", err)
	}
	if _, err := ApplyThemeChange(doc, ThemeFont, "COMIC"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error for unknown font, got %v", err)
	}
}

func TestCodecRoundTrip(t *testing.T) {
	doc := NewDefault("user-42")
	doc.Layout.Card = CardElegant
	doc.Offers = append(doc.Offers, Offer{ID: "o2", Title: "Flash", Discount: "10%", Code: "FLASH", Color: "#000"})
	for i, price := range []string{"", "299", "$1,299.00", "free"} {
		doc.Collections[0].Products = append(doc.Collections[0].Products,
			Product{ID: "px" + strconv.Itoa(i), Name: "Raw price", Price: price})
	}

	data, err := Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, degraded := Unmarshal(data, "someone-else")
	if len(degraded) != 0 {
		t.Errorf("expected no degraded fields, got %v", degraded)
	}
	if !reflect.DeepEqual(got, doc.Clone()) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, doc)
	}

	again, err := Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(again) != string(data) {
		t.Error("re-encoding is not byte identical")
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	for _, raw := range []string{"", "not json", "[]", "{}", "null"} {
		got, degraded := Unmarshal([]byte(raw), "abcd99")
		if !reflect.DeepEqual(got, NewDefault("abcd99")) {
			t.Errorf("%q: expected default document", raw)
		}
		if len(degraded) != 1 || degraded[0] != "document" {
			t.Errorf("%q: unexpected degraded list %v", raw, degraded)
		}
	}
}

func TestUnmarshalLenientFields(t *testing.T) {
	raw := `{
		"userId": "u7",
		"name": "Shop",
		"theme": {"primary": "#111", "secondary": "", "background": "#fff", "text": "#000", "radius": "1.5rem", "font": "mono"},
		"layout": {"card": "HEXAGON", "navigation": "GLASS", "header": "BOLD"},
		"payment": {"methods": "PAYPAL"},
		"navigation": [{"id": "t_home"}, {"id": "t_home"}, {"id": "t_orders"}, 12],
		"collections": [{"id": 5, "name": "Bags", "products": [{"id": 9, "name": "Tote", "price": 45.5}, "junk"]}],
		"offers": {"id": "o1", "title": "Only"}
	}`
	doc, degraded := Unmarshal([]byte(raw), "fallback")

	if doc.ID != "LK_U7" {
		t.Errorf("expected derived id LK_U7, got %s", doc.ID)
	}
	if doc.Theme.Secondary != DefaultPalette.Secondary {
		t.Errorf("empty secondary should fall back, got %q", doc.Theme.Secondary)
	}
	if doc.Theme.Radius != RadiusLarge || doc.Theme.Font != FontMono {
		t.Errorf("unexpected theme %+v", doc.Theme)
	}
	if doc.Layout.Card != CardGrid || doc.Layout.Navigation != NavGlass || doc.Layout.Header != HeaderBold {
		t.Errorf("unexpected layout %+v", doc.Layout)
	}
	if !reflect.DeepEqual(doc.Payment.Methods, []PaymentMethod{PaymentPayPal}) {
		t.Errorf("unexpected methods %v", doc.Payment.Methods)
	}
	if len(doc.Navigation) != 2 || doc.Navigation[1].Label != "My Orders" {
		t.Errorf("unexpected navigation %+v", doc.Navigation)
	}
	if len(doc.Collections) != 1 || doc.Collections[0].ID != "5" {
		t.Fatalf("unexpected collections %+v", doc.Collections)
	}
	p := doc.Collections[0].Products
	if len(p) != 1 || p[0].ID != "9" || p[0].Price != "$45.5" {
		t.Errorf("unexpected products %+v", p)
	}
	if len(doc.Offers) != 1 || doc.Offers[0].Title != "Only" {
		t.Errorf("unexpected offers %+v", doc.Offers)
	}
	if doc.APIEndpoint != DefaultAPIEndpoint {
		t.Errorf("missing endpoint should fall back, got %s", doc.APIEndpoint)
	}

	want := map[string]bool{"id": true, "theme.secondary": true, "layout.card": true, "navigation[]": true, "collections[]": true, "apiEndpoint": true}
	got := map[string]bool{}
	for _, f := range degraded {
		got[f] = true
	}
	for f := range want {
		if !got[f] {
			t.Errorf("expected %s in degraded list %v", f, degraded)
		}
	}
}

func TestUnmarshalTooFewTabs(t *testing.T) {
	doc, _ := Unmarshal([]byte(`{"navigation": [{"id": "t_cart"}]}`), "u1")
	if !reflect.DeepEqual(doc.Navigation, NewDefault("u1").Navigation) {
		t.Errorf("expected default navigation, got %+v", doc.Navigation)
	}
}

func TestMarshalIndentEmptySlices(t *testing.T) {
	doc := NewDefault("u1")
	doc.Collections = nil
	doc.Offers = nil
	data, err := MarshalIndent(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(top["collections"]) != "[]" || string(top["offers"]) != "[]" {
		t.Errorf("nil slices should encode as empty arrays, got %s / %s", top["collections"], top["offers"])
	}
}

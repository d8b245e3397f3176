package coffee

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNormalizeRecord(t *testing.T) {
	tests := []struct {
		name string
		raw  RawRecord
		want Item
	}{
		{
			name: "espresso from cold listing is hot",
			raw:  RawRecord{"id": 1.0, "title": "Espresso", "kind": nil},
			want: Item{
				ID:          NumberID(1),
				Title:       "Espresso",
				Ingredients: []string{},
				Image:       PlaceholderImage,
				Price:       34,
				Kind:        KindHot,
			},
		},
		{
			name: "missing id and title",
			raw:  RawRecord{},
			want: Item{
				ID:          StringID("cold-unknown-coffee"),
				Title:       DefaultTitle,
				Ingredients: []string{},
				Image:       PlaceholderImage,
				Price:       25,
				Kind:        KindCold,
			},
		},
		{
			name: "full record",
			raw: RawRecord{
				"id":          60.0,
				"title":       "Iced  Latte",
				"description": "Cold milk",
				"ingredients": []interface{}{"Espresso", "Milk", nil},
				"image":       "http://img.example.com/latte.png",
			},
			want: Item{
				ID:          NumberID(60),
				Title:       "Iced  Latte",
				Description: "Cold milk",
				Ingredients: []string{"Espresso", "Milk", ""},
				Image:       "https://img.example.com/latte.png",
				Price:       25 + (60+11)%45,
				Kind:        KindCold,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeRecord(tt.raw)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(ID{})); diff != "" {
				t.Errorf("NormalizeRecord() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalizeHotFirst(t *testing.T) {
	hot := []RawRecord{{"id": 2.0, "title": "Latte"}}
	cold := []RawRecord{{"id": 70.0, "title": "Cold Brew"}, {"id": 71.0, "title": "Frapino"}}

	items := Normalize(cold[:1], nil)
	if len(items) != 1 || items[0].Kind != KindCold {
		t.Fatalf("unexpected items %+v", items)
	}

	items = Normalize(hot, cold)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if items[0].Title != "Latte" || items[1].Title != "Cold Brew" || items[2].Title != "Frapino" {
		t.Errorf("unexpected order: %q %q %q", items[0].Title, items[1].Title, items[2].Title)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		raw  RawRecord
		want Kind
	}{
		{RawRecord{"id": 10.0, "title": "Latte"}, KindHot},
		{RawRecord{"id": 49.0, "title": "Latte"}, KindHot},
		{RawRecord{"id": 50.0, "title": "Latte"}, KindCold},
		{RawRecord{"id": "12", "title": "Latte"}, KindHot},
		{RawRecord{"id": "abc", "title": "Latte"}, KindCold},
		{RawRecord{"id": 10.0, "kind": "COLD", "title": "Latte"}, KindCold},
		{RawRecord{"id": 90.0, "kind": "hot", "title": "Latte"}, KindHot},
		{RawRecord{"id": 90.0, "kind": "warm", "title": "Latte"}, KindCold},
		{RawRecord{"id": 90.0, "title": "Double Ristretto"}, KindHot},
		{RawRecord{"id": 5.0, "kind": "hot", "title": "Strawberry Frapino"}, KindCold},
		{RawRecord{"id": 5.0, "title": "Apelsin Tonic"}, KindCold},
		{RawRecord{"id": 90.0, "title": "Espresso Lemonade"}, KindHot},
		{RawRecord{"id": nil, "title": "Latte"}, KindHot},
		{RawRecord{"id": "", "title": "Latte"}, KindHot},
		{RawRecord{"id": " ", "title": "Latte"}, KindHot},
		{RawRecord{"title": "Latte"}, KindCold},
	}
	for _, tt := range tests {
		title, _ := tt.raw["title"].(string)
		if got := NormalizeRecord(tt.raw).Kind; got != tt.want {
			t.Errorf("kind for %v (%s) = %s, want %s", tt.raw, title, got, tt.want)
		}
	}
}

func TestNullIDCountsAsZero(t *testing.T) {
	it := NormalizeRecord(RawRecord{"id": nil, "title": "Latte"})
	if it.Kind != KindHot || it.Key() != "hot-latte" {
		t.Errorf("null id: kind %s key %q, want hot and hot-latte", it.Kind, it.Key())
	}
}

func TestEspressoAlwaysHot(t *testing.T) {
	for _, raw := range []RawRecord{
		{"id": 99.0, "title": "ESPRESSO tonic", "kind": "cold"},
		{"title": "iced espresso"},
		{"id": "x", "title": "Espresso"},
	} {
		if got := NormalizeRecord(raw).Kind; got != KindHot {
			t.Errorf("%v: kind = %s, want hot", raw, got)
		}
	}
}

func TestPriceRangeAndDeterminism(t *testing.T) {
	for id := -100; id <= 200; id++ {
		for n := 0; n < 60; n++ {
			p := PriceFor(float64(id), n)
			if p < 25 || p > 69 {
				t.Fatalf("PriceFor(%d, %d) = %d out of range", id, n, p)
			}
			if p != PriceFor(float64(id), n) {
				t.Fatalf("PriceFor(%d, %d) not deterministic", id, n)
			}
		}
	}

	raw := RawRecord{"id": 3.7, "title": "Mocha"}
	if got, want := Price(raw), 25+(3+5)%45; got != want {
		t.Errorf("Price() = %d, want %d", got, want)
	}
	if got, want := Price(RawRecord{"title": "Café"}), 29; got != want {
		t.Errorf("Price() = %d, want %d", got, want)
	}
}

func TestIdentityFallback(t *testing.T) {
	it := NormalizeRecord(RawRecord{"title": "Black \t Coffee", "kind": "hot"})
	if got := it.Key(); got != "hot-black-coffee" {
		t.Errorf("Key() = %q", got)
	}
}

func TestIDJSON(t *testing.T) {
	for _, id := range []ID{NumberID(7), NumberID(1.5), StringID("cold-latte")} {
		b, err := json.Marshal(id)
		if err != nil {
			t.Fatalf("marshal %v: %v", id, err)
		}
		var got ID
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("unmarshal %s: %v", b, err)
		}
		if !got.Equal(id) {
			t.Errorf("round trip %s: got %v want %v", b, got, id)
		}
	}
	if NumberID(7).String() != "7" {
		t.Errorf("NumberID(7).String() = %q", NumberID(7).String())
	}
	var id ID
	if err := json.Unmarshal([]byte(`{}`), &id); err == nil {
		t.Error("expected error for object id")
	}
}

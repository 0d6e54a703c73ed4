package form

import (
	"strings"
	"testing"

	"github.com/teakit/teakit/widgets"
)

func testBlueprint() Blueprint {
	return Blueprint{
		Items: []Item{
			{Key: "name", Make: func(key string) Element {
				return widgets.TextField(key, "Name")
			}},
			{Key: "age", Groups: []string{"optional"}, Make: func(key string) Element {
				return widgets.IntField(key, "Age")
			}},
			{Key: "bio", Groups: []string{"optional", "long"}, Make: func(key string) Element {
				return widgets.NewArea(key, "Bio")
			}},
		},
	}
}

func keys(f *Form) []string {
	out := make([]string, len(f.elements))
	for i, el := range f.elements {
		out[i] = el.Key()
	}
	return out
}

func TestBlueprint_New(t *testing.T) {
	f := testBlueprint().New()
	if got := keys(f); len(got) != 3 || got[0] != "name" || got[2] != "bio" {
		t.Errorf("keys = %v", got)
	}
}

func TestBlueprint_Without(t *testing.T) {
	b := testBlueprint()
	f := b.Without("age").New()
	if got := keys(f); len(got) != 2 || got[0] != "name" || got[1] != "bio" {
		t.Errorf("keys = %v", got)
	}
	// The original is untouched.
	if len(b.Items) != 3 {
		t.Errorf("source blueprint mutated, %d items", len(b.Items))
	}
}

func TestBlueprint_WithoutGroups(t *testing.T) {
	f := testBlueprint().WithoutGroups("optional").New()
	if got := keys(f); len(got) != 1 || got[0] != "name" {
		t.Errorf("keys = %v", got)
	}
}

func TestBlueprint_GeneratesMissingKeys(t *testing.T) {
	b := Blueprint{Items: []Item{
		{Make: func(key string) Element { return widgets.TextField(key, "A") }},
		{Make: func(key string) Element { return widgets.TextField(key, "B") }},
	}}
	got := keys(b.New())
	if got[0] == got[1] {
		t.Errorf("generated keys collide: %v", got)
	}
	for _, k := range got {
		if !strings.HasPrefix(k, "field-") {
			t.Errorf("unexpected generated key %q", k)
		}
	}
}

func TestLoginBlueprint(t *testing.T) {
	f := Login(nil)
	if got := keys(f); len(got) != 2 || got[0] != "username" || got[1] != "password" {
		t.Fatalf("keys = %v", got)
	}
	f.elements[0].(*widgets.Field).SetValue("ada")
	f.elements[1].(*widgets.Field).SetValue("s3cret")
	if !f.Validate() {
		t.Errorf("errors: %v", f.Errors())
	}
	if f.Data()["password"].(string) != "s3cret" {
		t.Errorf("data = %v", f.Data())
	}
}

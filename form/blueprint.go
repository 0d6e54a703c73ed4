package form

import (
	"github.com/google/uuid"
)

// Item describes one element of a Blueprint. Make receives the final
// key so prepared items can be reused under different names. Groups
// tag the item for bulk deactivation.
type Item struct {
	Key    string
	Groups []string
	Make   func(key string) Element
}

// Blueprint is a reusable form definition: a list of items plus the
// options every built form starts with. Blueprints are value types;
// Without and WithoutGroups return filtered copies, so one blueprint
// can serve several forms.
type Blueprint struct {
	Items   []Item
	Options []Option
}

// Without returns a copy of the blueprint with the named items
// removed.
func (b Blueprint) Without(keys ...string) Blueprint {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}
	out := b
	out.Items = nil
	for _, item := range b.Items {
		if !drop[item.Key] {
			out.Items = append(out.Items, item)
		}
	}
	return out
}

// WithoutGroups returns a copy of the blueprint with every item that
// belongs to any of the named groups removed.
func (b Blueprint) WithoutGroups(groups ...string) Blueprint {
	drop := make(map[string]bool, len(groups))
	for _, g := range groups {
		drop[g] = true
	}
	out := b
	out.Items = nil
	for _, item := range b.Items {
		excluded := false
		for _, g := range item.Groups {
			if drop[g] {
				excluded = true
				break
			}
		}
		if !excluded {
			out.Items = append(out.Items, item)
		}
	}
	return out
}

// New builds a form from the blueprint. Items without a key get a
// generated one so their values still appear in the form data. opts
// apply after the blueprint's own options.
func (b Blueprint) New(opts ...Option) *Form {
	elements := make([]Element, 0, len(b.Items))
	for _, item := range b.Items {
		key := item.Key
		if key == "" {
			key = "field-" + uuid.New().String()[:8]
		}
		elements = append(elements, item.Make(key))
	}
	return New(elements, append(append([]Option(nil), b.Options...), opts...)...)
}

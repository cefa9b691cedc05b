package blueprint

import (
	"reflect"
	"testing"
)

type itemList struct {
	items []any
}

func (l itemList) RenderItems() []any { return l.items }

func TestIsCollection(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"slice", []int{1, 2}, true},
		{"empty slice", []int{}, true},
		{"array", [2]string{"a", "b"}, true},
		{"byte slice", []byte("raw"), false},
		{"string", "text", false},
		{"map", map[string]int{"a": 1}, false},
		{"struct", struct{ X int }{1}, false},
		{"capability", itemList{items: []any{1}}, true},
		{"empty capability", itemList{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCollection(tt.in); got != tt.want {
				t.Errorf("isCollection(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCollectionItems_Order(t *testing.T) {
	got := collectionItems([]string{"a", "b", "c"})
	want := []any{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("collectionItems() = %v, want %v", got, want)
	}
}

func TestCollectionItems_Capability(t *testing.T) {
	got := collectionItems(itemList{items: []any{1, 2}})
	if !reflect.DeepEqual(got, []any{1, 2}) {
		t.Errorf("collectionItems() = %v, want [1 2]", got)
	}
}

func TestIsNil(t *testing.T) {
	var p *int
	var m map[string]int
	var s []int
	var fn func()

	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"untyped nil", nil, true},
		{"typed nil pointer", p, true},
		{"typed nil map", m, true},
		{"typed nil slice", s, true},
		{"typed nil func", fn, true},
		{"zero int", 0, false},
		{"empty string", "", false},
		{"non-nil pointer", new(int), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNil(tt.in); got != tt.want {
				t.Errorf("isNil(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

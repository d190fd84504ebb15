package quantify

import (
	"fmt"
	"iter"
	"reflect"
	"sort"

	"github.com/quantify-go/quantify/pretty"
)

// Collection is the engine's view of a container: a single-pass iterator
// with a display label per element, plus a decorated rendering used in the
// "in <container>" suffix of failure messages. Iteration must be
// deterministic within one pass.
type Collection[E any] interface {
	Len() int
	All() iter.Seq2[Label, E]
	String() string
}

// ---- slices, variadic values and iterators ----

type sliceCollection[E any] struct{ items []E }

// Slice adapts a slice; labels are zero-based indices.
func Slice[E any](items []E) Collection[E] { return sliceCollection[E]{items: items} }

// Of adapts the given values in order.
func Of[E any](items ...E) Collection[E] { return sliceCollection[E]{items: items} }

// Seq materializes an iterator once so the inspection and the container
// rendering observe the same elements.
func Seq[E any](seq iter.Seq[E]) Collection[E] {
	var items []E
	for e := range seq {
		items = append(items, e)
	}
	return sliceCollection[E]{items: items}
}

func (c sliceCollection[E]) Len() int { return len(c.items) }

func (c sliceCollection[E]) All() iter.Seq2[Label, E] {
	return func(yield func(Label, E) bool) {
		for i, e := range c.items {
			if !yield(Label{Kind: LabelIndex, Index: i}, e) {
				return
			}
		}
	}
}

func (c sliceCollection[E]) String() string { return pretty.Format(c.items) }

// ---- strings ----

type runeCollection struct{ s string }

// Runes adapts a string as a sequence of runes; labels are zero-based rune
// positions.
func Runes(s string) Collection[rune] { return runeCollection{s: s} }

func (c runeCollection) Len() int {
	n := 0
	for range c.s {
		n++
	}
	return n
}

func (c runeCollection) All() iter.Seq2[Label, rune] {
	return func(yield func(Label, rune) bool) {
		i := 0
		for _, r := range c.s {
			if !yield(Label{Kind: LabelIndex, Index: i}, r) {
				return
			}
			i++
		}
	}
}

func (c runeCollection) String() string { return pretty.Format(c.s) }

// ---- maps ----

// Pair is one map entry, exposed with Key/Value accessors.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func (p Pair[K, V]) String() string {
	return pretty.Format(p.Key) + " -> " + pretty.Format(p.Value)
}

type mapCollection[K comparable, V any] struct {
	keys    []string // rendered, sorted
	pairs   []Pair[K, V]
	display string
}

// Map adapts a map as a sequence of Pair entries; labels are the rendered
// keys. Go maps have no stable iteration order, so entries are visited in
// sorted rendered-key order to keep reports reproducible across runs.
func Map[K comparable, V any](m map[K]V) Collection[Pair[K, V]] {
	type kv struct {
		rendered string
		key      K
	}
	ks := make([]kv, 0, len(m))
	for k := range m {
		ks = append(ks, kv{rendered: pretty.Format(k), key: k})
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i].rendered < ks[j].rendered })
	c := mapCollection[K, V]{
		keys:    make([]string, 0, len(ks)),
		pairs:   make([]Pair[K, V], 0, len(ks)),
		display: pretty.Format(m),
	}
	for _, e := range ks {
		c.keys = append(c.keys, e.rendered)
		c.pairs = append(c.pairs, Pair[K, V]{Key: e.key, Value: m[e.key]})
	}
	return c
}

func (c mapCollection[K, V]) Len() int { return len(c.pairs) }

func (c mapCollection[K, V]) All() iter.Seq2[Label, Pair[K, V]] {
	return func(yield func(Label, Pair[K, V]) bool) {
		for i := range c.pairs {
			if !yield(Label{Kind: LabelKey, Key: c.keys[i]}, c.pairs[i]) {
				return
			}
		}
	}
}

func (c mapCollection[K, V]) String() string { return c.display }

// ---- untyped platform values ----

type anyCollection struct {
	items     []any
	keyLabels []string // non-nil for maps
	display   string
}

// FromAny adapts an arbitrary platform value: slices and arrays become
// index-labelled sequences, strings become rune sequences, maps become
// key-labelled Pair entries. Other kinds are rejected.
func FromAny(v any) (Collection[any], error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return anyCollection{items: items, display: pretty.Format(v)}, nil
	case reflect.String:
		s := rv.String()
		var items []any
		for _, r := range s {
			items = append(items, r)
		}
		return anyCollection{items: items, display: pretty.Format(s)}, nil
	case reflect.Map:
		type kv struct {
			rendered string
			key      reflect.Value
		}
		ks := make([]kv, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			ks = append(ks, kv{rendered: pretty.Format(k.Interface()), key: k})
		}
		sort.Slice(ks, func(i, j int) bool { return ks[i].rendered < ks[j].rendered })
		items := make([]any, 0, len(ks))
		labels := make([]string, 0, len(ks))
		for _, e := range ks {
			items = append(items, Pair[any, any]{Key: e.key.Interface(), Value: rv.MapIndex(e.key).Interface()})
			labels = append(labels, e.rendered)
		}
		return anyCollection{items: items, keyLabels: labels, display: pretty.Format(v)}, nil
	default:
		return nil, fmt.Errorf("quantify: unsupported container %T", v)
	}
}

func (c anyCollection) Len() int { return len(c.items) }

func (c anyCollection) All() iter.Seq2[Label, any] {
	return func(yield func(Label, any) bool) {
		for i, e := range c.items {
			lbl := Label{Kind: LabelIndex, Index: i}
			if c.keyLabels != nil {
				lbl = Label{Kind: LabelKey, Key: c.keyLabels[i]}
			}
			if !yield(lbl, e) {
				return
			}
		}
	}
}

func (c anyCollection) String() string { return c.display }

package input

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/tetris"
)

// Bindings maps device key codes to intents. SoftDrop bindings fire while
// the key is held; every other binding fires on the press edge only.
type Bindings[K intmap.IntKey] struct {
	table *intmap.Map[K, tetris.Intents]
	keys  []K
}

// NewBindings creates an empty table.
func NewBindings[K intmap.IntKey]() *Bindings[K] {
	return &Bindings[K]{
		table: intmap.New[K, tetris.Intents](16),
	}
}

// Bind adds in to the intents produced by key.
func (b *Bindings[K]) Bind(key K, in tetris.Intents) *Bindings[K] {
	prev, ok := b.table.Get(key)
	if !ok {
		b.keys = append(b.keys, key)
	}
	b.table.Put(key, prev|in)
	return b
}

// Unbind removes every intent bound to key.
func (b *Bindings[K]) Unbind(key K) {
	if _, ok := b.table.Get(key); !ok {
		return
	}
	b.table.Del(key)
	for i, k := range b.keys {
		if k == key {
			b.keys = append(b.keys[:i], b.keys[i+1:]...)
			break
		}
	}
}

// Lookup returns the intents bound to key.
func (b *Bindings[K]) Lookup(key K) (tetris.Intents, bool) {
	return b.table.Get(key)
}

// Keys returns the bound keys in binding order.
func (b *Bindings[K]) Keys() []K {
	return b.keys
}

// Len returns the number of bound keys.
func (b *Bindings[K]) Len() int {
	return b.table.Len()
}

// Press returns the edge-triggered intents of a key that was just pressed.
func (b *Bindings[K]) Press(key K) tetris.Intents {
	in, _ := b.table.Get(key)
	return in &^ tetris.SoftDrop
}

// Hold returns the level-triggered intents of a key that is down.
func (b *Bindings[K]) Hold(key K) tetris.Intents {
	in, _ := b.table.Get(key)
	return in & tetris.SoftDrop
}

// Resolve folds the keys pressed this frame and the keys currently held
// into one intent set.
func (b *Bindings[K]) Resolve(pressed, held []K) tetris.Intents {
	var in tetris.Intents
	for _, k := range pressed {
		in |= b.Press(k)
	}
	for _, k := range held {
		in |= b.Hold(k)
	}
	return in
}

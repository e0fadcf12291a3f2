package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributesWithKeepsReceiver(t *testing.T) {
	base := NewAttributes("classes", "active")
	a := base.With("targets", "#a")
	b := base.With("targets", "#b")

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, []string{"classes", "targets"}, a.Keys())

	va, _ := a.Get("targets")
	vb, _ := b.Get("targets")
	assert.Equal(t, "#a", va)
	assert.Equal(t, "#b", vb)
}

func TestAttributesWithOverwrites(t *testing.T) {
	a := NewAttributes("title", "first")
	b := a.With("title", "second")

	v, ok := b.Get("title")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, b.Len())

	v, _ = a.Get("title")
	assert.Equal(t, "first", v, "receiver must not change")
}

func TestAttributesSortedRegardlessOfInsertion(t *testing.T) {
	a := NewAttributes("url", "/", "title", "t", "state", "{}", "action", "push_state")
	assert.Equal(t, []string{"action", "state", "title", "url"}, a.Keys())

	b := AttributesFrom(map[string]string{"url": "/", "title": "t", "state": "{}", "action": "push_state"})
	assert.Equal(t, a.Keys(), b.Keys())
	assert.Equal(t, a.Map(), b.Map())
}

func TestAttributesMerge(t *testing.T) {
	a := NewAttributes("body", "hello", "icon", "a.png")
	b := NewAttributes("icon", "b.png", "tag", "x")

	m := a.Merge(b)
	assert.Equal(t, map[string]string{"body": "hello", "icon": "b.png", "tag": "x"}, m.Map())
	assert.Equal(t, "a.png", a.Map()["icon"])
}

func TestAttributesWithout(t *testing.T) {
	a := NewAttributes("a", "1", "b", "2")
	assert.Equal(t, []string{"a"}, a.Without("b").Keys())
	assert.Equal(t, []string{"a", "b"}, a.Without("missing").Keys())
	assert.Equal(t, 2, a.Len())
}

func TestAttributesOddPairs(t *testing.T) {
	a := NewAttributes("a", "1", "dangling")
	v, ok := a.Get("dangling")
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestAttributesAll(t *testing.T) {
	a := NewAttributes("b", "2", "a", "1", "c", "3")

	var keys []string
	for k := range a.All() {
		keys = append(keys, k)
		if k == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}

func TestAttributesZeroValue(t *testing.T) {
	var a Attributes
	assert.Equal(t, 0, a.Len())
	_, ok := a.Get("x")
	assert.False(t, ok)
	assert.Empty(t, a.Map())
}

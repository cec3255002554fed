package chain_test

import (
	"runtime"
	"testing"

	"github.com/plus3/spritecore/chain"
	"github.com/stretchr/testify/assert"
)

type enemy struct {
	name string
	hp   int
}

func (e *enemy) String() string {
	return e.name
}

type bullet struct {
	label string
	speed int
}

func TestEmptyLink(t *testing.T) {
	link := chain.NewLink[enemy]()

	assert.Nil(t, link.Entity())
	assert.Nil(t, link.Next())
	assert.Equal(t, "", link.String())
	assert.False(t, link.Id().IsZero())
}

func TestLinkAccessors(t *testing.T) {
	orc := &enemy{name: "orc"}
	goblin := &enemy{name: "goblin"}

	tail := chain.NewLinkTo(goblin, nil)
	head := chain.NewLinkTo(orc, tail)

	assert.Same(t, orc, head.Entity())
	assert.Same(t, tail, head.Next())
	assert.Equal(t, "orc", head.String())
	assert.Nil(t, tail.Next())

	head.SetEntity(goblin)
	head.SetNext(nil)
	assert.Same(t, goblin, head.Entity())
	assert.Nil(t, head.Next())

	head.SetEntity(nil)
	assert.Nil(t, head.Entity())
	assert.Equal(t, "", head.String())
}

func TestLinkStringWithoutStringer(t *testing.T) {
	link := chain.NewLinkTo(&bullet{label: "b", speed: 3}, nil)
	assert.Equal(t, "{b 3}", link.String())
}

func TestLinkHashIsIdentity(t *testing.T) {
	orc := &enemy{name: "orc"}
	a := chain.NewLinkTo(orc, nil)
	b := chain.NewLinkTo(orc, nil)

	hash := a.Hash()
	a.SetEntity(&enemy{name: "troll"})
	a.SetNext(b)
	assert.Equal(t, hash, a.Hash())
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestLinkEqualIsShallow(t *testing.T) {
	orc := &enemy{name: "orc"}
	twin := &enemy{name: "orc"}
	tail := chain.NewLinkTo(&enemy{name: "tail"}, nil)

	a := chain.NewLinkTo(orc, tail)
	b := chain.NewLinkTo(orc, tail)
	assert.True(t, a.Equal(b))
	assert.NotEqual(t, a.Id(), b.Id())

	// same field values but a different entity reference
	c := chain.NewLinkTo(twin, tail)
	assert.False(t, a.Equal(c))

	// same entity, structurally identical but distinct successor
	d := chain.NewLinkTo(orc, chain.NewLinkTo(&enemy{name: "tail"}, nil))
	assert.False(t, a.Equal(d))

	assert.True(t, chain.NewLink[enemy]().Equal(chain.NewLink[enemy]()))

	var none *chain.Link[enemy]
	assert.False(t, a.Equal(nil))
	assert.False(t, none.Equal(a))
}

func TestLinkDoesNotOwnEntity(t *testing.T) {
	link := chain.NewLinkTo(&enemy{name: "ghost", hp: 1}, nil)

	for i := 0; i < 10 && link.Entity() != nil; i++ {
		runtime.GC()
	}

	assert.Nil(t, link.Entity())
	assert.Equal(t, "", link.String())
}

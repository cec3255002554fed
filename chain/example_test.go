package chain_test

import (
	"fmt"
	"runtime"

	"github.com/plus3/spritecore/chain"
)

func ExampleChain() {
	orc := &enemy{name: "orc", hp: 3}
	bat := &enemy{name: "bat", hp: 0}
	imp := &enemy{name: "imp", hp: 5}

	enemies := chain.New[enemy]()
	enemies.Prepend(orc)
	enemies.Prepend(bat)
	enemies.Prepend(imp)
	fmt.Println(enemies)

	enemies.RemoveFunc(func(e *enemy) bool { return e.hp <= 0 })
	fmt.Println(enemies, enemies.Len())

	// the chain holds entities weakly; their owner keeps them alive
	runtime.KeepAlive([]*enemy{orc, bat, imp})
	// Output:
	// [imp bat orc]
	// [imp orc] 2
}

func ExampleLink() {
	// walking and splicing by hand, without the Chain wrapper
	entities := []*enemy{{name: "a"}, {name: "b"}, {name: "c"}}

	c := chain.NewLinkTo(entities[2], nil)
	b := chain.NewLinkTo(entities[1], c)
	a := chain.NewLinkTo(entities[0], b)

	a.SetNext(b.Next())

	for link := a; link != nil; link = link.Next() {
		fmt.Println(link)
	}
	runtime.KeepAlive(entities)
	// Output:
	// a
	// c
}

package anim_test

import (
	"fmt"

	"github.com/plus3/spritecore/anim"
)

func ExamplePlayer() {
	walk := anim.NewClip("walk", []int{0, 1, 2, 3}, 8)
	player := anim.NewPlayer(walk)

	// 64 ticks per second for 0.625s
	for i := 0; i < 40; i++ {
		player.Advance(1.0 / 64.0)
	}

	frame, _ := player.Frame()
	fmt.Println(walk, frame, player.Loops())
	// Output: walk 1 1
}

func ExampleTable_Reload() {
	table, err := anim.ParseTable([]byte(`
clips:
  - name: attack
    frames: [0, 1, 2]
    fps: 12
    loop: false
`))
	if err != nil {
		panic(err)
	}

	attack, _ := table.Lookup("attack")
	before := attack.Hash()

	_, err = table.Reload([]byte(`
clips:
  - name: attack
    frames: [0, 1, 2]
    fps: 24
    loop: false
`))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.0f fps, same identity: %v\n", attack.Framerate(), attack.Hash() == before)
	// Output: 24 fps, same identity: true
}

package loop

// UpdateFrame is handed to every system during one tick of the loop.
type UpdateFrame[T any] struct {
	DeltaTime float64
	Commands  *Commands[T]
	Groups    *Groups[T]
}

func newUpdateFrame[T any](groups *Groups[T]) *UpdateFrame[T] {
	return &UpdateFrame[T]{
		Commands: newCommands[T](),
		Groups:   groups,
	}
}

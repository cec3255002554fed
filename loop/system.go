package loop

// System represents a behavior run once per frame over entity groups.
// User-defined systems implement this interface and can declare Group fields,
// which the Scheduler binds on registration, as well as custom state fields
// that persist between frames.
type System[T any] interface {
	Execute(frame *UpdateFrame[T])
}

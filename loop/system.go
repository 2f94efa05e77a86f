package loop

// System is one step of a frame. Systems keep their own state between frames
// and reach the shared state through the frame.
type System[S any] interface {
	Execute(frame *Frame[S])
}

type funcSystem[S any] func(frame *Frame[S])

func (f funcSystem[S]) Execute(frame *Frame[S]) {
	f(frame)
}

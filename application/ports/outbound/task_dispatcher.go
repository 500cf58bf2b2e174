package outbound

// TaskDispatcher abstracts the shared worker pool.
type TaskDispatcher interface {
	Submit(task func()) error
}

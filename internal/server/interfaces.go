package server

// Server runs every configured transport until the process receives a
// termination signal, then drains them.
type Server interface {
	RunServer()
	Shutdown()
}

// transport is a single listener owned by [Server]. RunServer blocks while
// serving; Shutdown must be safe to call once RunServer has started.
type transport interface {
	Name() string
	RunServer()
	Shutdown()
}

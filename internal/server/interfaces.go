package server

// Server is a runnable transport. RunServer blocks until the process is
// asked to stop; Shutdown drains in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}

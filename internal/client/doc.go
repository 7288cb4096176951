// Package client provides an HTTP implementation of domain.RemoteClient for
// talking to a tapecalc server.
//
// Supported operations include:
//   - Evaluating expressions and building layouts on the server.
//   - Recording, listing and clearing calculation history.
//   - Saving, listing and deleting saved measurements.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as *StatusError carrying the
// method, path, status and the server's error message.
package client

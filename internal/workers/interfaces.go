// Package workers starts and stops the client's background jobs.
package workers

// Worker is a background job. Run must not block; Stop waits until the job
// has exited.
type Worker interface {
	Run()
	Stop()
}

package events

import "sync"

// Settled runs op on its own goroutine and returns a channel that is
// closed once op has finished, whether it succeeded or failed. The
// outcome itself is discarded; the channel carries only the fact of
// completion.
func Settled(op func() error) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = op()
	}()
	return done
}

// AllSettled runs every op concurrently and returns a channel that is
// closed once all of them have finished, regardless of individual
// outcomes.
func AllSettled(ops ...func() error) <-chan struct{} {
	var wg sync.WaitGroup
	wg.Add(len(ops))
	for _, op := range ops {
		go func(op func() error) {
			defer wg.Done()
			_ = op()
		}(op)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		wg.Wait()
	}()
	return done
}

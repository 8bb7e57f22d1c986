package service

import (
	"context"
	"errors"
	"sync"
	"time"
)

const defaultSessionCheckInterval = time.Minute

type clientSessionJob struct {
	authService ClientAuthService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSessionJob creates a clientSessionJob that calls
// authService.CheckSession on a ticker. The job is idle until Start is called.
func NewClientSessionJob(authService ClientAuthService) ClientSessionJob {
	return &clientSessionJob{authService: authService}
}

// Start implements ClientSessionJob. It stops any previously running job,
// then launches a background goroutine that checks the session every
// interval. The goroutine exits when ctx is cancelled, Stop is called or the
// session has expired.
func (j *clientSessionJob) Start(ctx context.Context, interval time.Duration, onExpired func()) {
	if interval <= 0 {
		interval = defaultSessionCheckInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				err := j.authService.CheckSession(jobCtx)
				if errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrNotSignedIn) {
					if onExpired != nil {
						onExpired()
					}
					return
				}
			}
		}
	}()
}

// Stop implements ClientSessionJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running.
func (j *clientSessionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

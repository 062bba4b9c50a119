package pages

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResource_LifecycleSuccessAndError(t *testing.T) {
	var r Resource[string]
	assert.Equal(t, StateIdle, r.State())

	r.Load(context.Background(), func(context.Context) (string, error) {
		return "value", nil
	})
	assert.Equal(t, StateSuccess, r.State())
	assert.Equal(t, "value", r.Value())
	assert.NoError(t, r.Err())

	r.Load(context.Background(), func(context.Context) (string, error) {
		return "", errors.New("boom")
	})
	assert.Equal(t, StateError, r.State())
	assert.EqualError(t, r.Err(), "boom")
}

func TestResource_StaleLoadDoesNotOverwriteNewer(t *testing.T) {
	var r Resource[string]
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.Load(context.Background(), func(context.Context) (string, error) {
			<-release
			return "old", nil
		})
	}()

	// Let the slow load start, then supersede it.
	time.Sleep(20 * time.Millisecond)
	r.Load(context.Background(), func(context.Context) (string, error) {
		return "new", nil
	})
	close(release)
	wg.Wait()

	assert.Equal(t, "new", r.Value(), "the earlier response must be discarded")
	assert.Equal(t, StateSuccess, r.State())
}

func TestResource_ResetInvalidatesInFlightLoad(t *testing.T) {
	var r Resource[int]
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r.Load(context.Background(), func(context.Context) (int, error) {
			<-release
			return 42, nil
		})
	}()

	time.Sleep(20 * time.Millisecond)
	r.Reset()
	close(release)
	wg.Wait()

	assert.Equal(t, StateIdle, r.State())
	assert.Zero(t, r.Value())
}

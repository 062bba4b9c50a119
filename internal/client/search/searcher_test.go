package search

import (
	"context"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

type recordingFetcher struct {
	mu       sync.Mutex
	requests []url.Values
	delay    time.Duration
	results  []entities.Location
}

func (f *recordingFetcher) SearchLocations(_ context.Context, params url.Values) ([]entities.Location, error) {
	f.mu.Lock()
	f.requests = append(f.requests, params)
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.results, nil
}

func (f *recordingFetcher) recorded() []url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]url.Values(nil), f.requests...)
}

func TestSearcher_CoalescesRapidChangesIntoOneRequest(t *testing.T) {
	fetcher := &recordingFetcher{}

	var mu sync.Mutex
	var delivered []Result
	s := NewSearcher(fetcher, 50*time.Millisecond, func(r Result) {
		mu.Lock()
		delivered = append(delivered, r)
		mu.Unlock()
	})
	defer s.Close()

	s.Update(Filters{Query: "a"}, "Test U", "")
	s.Update(Filters{Query: "ab"}, "Test U", "")
	s.Update(Filters{Query: "abc"}, "Test U", "")

	time.Sleep(200 * time.Millisecond)

	requests := fetcher.recorded()
	require.Len(t, requests, 1, "three rapid changes must produce one request")
	assert.Equal(t, "abc", requests[0].Get("q"), "request carries the last state")

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, delivered, 1)
}

func TestSearcher_SpacedChangesEachFire(t *testing.T) {
	fetcher := &recordingFetcher{}
	s := NewSearcher(fetcher, 20*time.Millisecond, func(Result) {})
	defer s.Close()

	s.Update(Filters{Query: "a"}, "Test U", "")
	time.Sleep(80 * time.Millisecond)
	s.Update(Filters{Query: "b"}, "Test U", "")
	time.Sleep(80 * time.Millisecond)

	assert.Len(t, fetcher.recorded(), 2)
}

func TestSearcher_StaleResponseIsDropped(t *testing.T) {
	fetcher := &recordingFetcher{delay: 60 * time.Millisecond}

	var mu sync.Mutex
	var delivered []Result
	s := NewSearcher(fetcher, 10*time.Millisecond, func(r Result) {
		mu.Lock()
		delivered = append(delivered, r)
		mu.Unlock()
	})
	defer s.Close()

	s.Update(Filters{Query: "slow"}, "Test U", "")
	// Let the first request get in flight, then supersede it.
	time.Sleep(30 * time.Millisecond)
	s.Update(Filters{Query: "fast"}, "Test U", "")

	time.Sleep(250 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, delivered, 1, "the superseded response must be discarded")

	requests := fetcher.recorded()
	require.Len(t, requests, 2)
	assert.Equal(t, "fast", requests[1].Get("q"))
}

func TestSearcher_CloseStopsPendingWork(t *testing.T) {
	fetcher := &recordingFetcher{}
	s := NewSearcher(fetcher, 20*time.Millisecond, func(Result) {
		t.Error("no delivery expected after Close")
	})

	s.Update(Filters{Query: "a"}, "Test U", "")
	s.Close()

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, fetcher.recorded())
}

func TestSearcher_FlushFiresImmediately(t *testing.T) {
	fetcher := &recordingFetcher{}
	done := make(chan Result, 1)
	s := NewSearcher(fetcher, time.Hour, func(r Result) { done <- r })
	defer s.Close()

	s.Update(Filters{Query: "now"}, "Test U", "")
	s.Flush()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("flush did not deliver")
	}
	require.Len(t, fetcher.recorded(), 1)
}

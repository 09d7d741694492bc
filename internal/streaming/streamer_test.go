package streaming

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu    sync.Mutex
	reads []string
	fail  map[string]bool
	gate  chan struct{}
}

func (f *fakeSource) Read(name string) (string, error) {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads = append(f.reads, name)
	if f.fail[name] {
		return "", errors.New("boom")
	}
	return "segment:" + name, nil
}

type fakeSink struct {
	events   []string
	attached map[string]string
}

func newFakeSink() *fakeSink {
	return &fakeSink{attached: make(map[string]string)}
}

func (f *fakeSink) Attach(name, segment string) {
	f.events = append(f.events, "attach "+name)
	f.attached[name] = segment
}

func (f *fakeSink) Detach(name string) {
	f.events = append(f.events, "detach "+name)
	delete(f.attached, name)
}

func settle(t *testing.T, s *Streamer[string]) {
	t.Helper()
	require.Eventually(t, func() bool {
		s.Poll()
		return s.Pending() == 0
	}, 2*time.Second, time.Millisecond)
}

func TestLoadAttachesOnPoll(t *testing.T) {
	source := &fakeSource{gate: make(chan struct{})}
	sink := newFakeSink()
	s := New[string](source, sink)
	defer s.Close()

	s.Load("maze")
	assert.Equal(t, 1, s.Pending())
	assert.False(t, s.IsLoaded("maze"))

	close(source.gate)
	settle(t, s)

	assert.True(t, s.IsLoaded("maze"))
	assert.Equal(t, "segment:maze", sink.attached["maze"])
	assert.Equal(t, []string{"maze"}, s.Loaded())
}

func TestEnterExitEnterEndsLoaded(t *testing.T) {
	sink := newFakeSink()
	s := New[string](&fakeSource{}, sink)
	defer s.Close()

	s.Load("maze")
	s.Unload("maze")
	s.Load("maze")
	settle(t, s)

	assert.True(t, s.IsLoaded("maze"))
	assert.Equal(t, []string{"attach maze", "detach maze", "attach maze"}, sink.events)
}

func TestLoadThenUnloadEndsUnloaded(t *testing.T) {
	sink := newFakeSink()
	s := New[string](&fakeSource{}, sink)
	defer s.Close()

	s.Load("maze")
	s.Unload("maze")
	settle(t, s)

	assert.False(t, s.IsLoaded("maze"))
	assert.Empty(t, sink.attached)
}

func TestUnloadOfUnloadedIsNoop(t *testing.T) {
	sink := newFakeSink()
	s := New[string](&fakeSource{}, sink)
	defer s.Close()

	s.Unload("maze")
	settle(t, s)

	assert.Empty(t, sink.events)
}

func TestDoubleLoadAttachesOnce(t *testing.T) {
	sink := newFakeSink()
	s := New[string](&fakeSource{}, sink)
	defer s.Close()

	s.Load("maze")
	s.Load("maze")
	settle(t, s)

	assert.Equal(t, []string{"attach maze"}, sink.events)
}

func TestFailedLoadStaysUnloaded(t *testing.T) {
	source := &fakeSource{fail: map[string]bool{"broken": true}}
	sink := newFakeSink()
	s := New[string](source, sink)
	defer s.Close()

	s.Load("broken")
	s.Load("maze")
	settle(t, s)

	assert.False(t, s.IsLoaded("broken"))
	assert.True(t, s.IsLoaded("maze"))
}

func TestRequestsKeepSubmissionOrder(t *testing.T) {
	source := &fakeSource{}
	sink := newFakeSink()
	s := New[string](source, sink)
	defer s.Close()

	for _, name := range []string{"a", "b", "c"} {
		s.Load(name)
	}
	s.Unload("b")
	settle(t, s)

	assert.Equal(t, []string{"a", "b", "c"}, source.reads)
	assert.Equal(t, []string{"attach a", "attach b", "attach c", "detach b"}, sink.events)
}

func TestCloseDropsLaterRequests(t *testing.T) {
	s := New[string](&fakeSource{}, newFakeSink())
	s.Close()
	s.Close()

	s.Load("maze")
	assert.Equal(t, 0, s.Pending())
	assert.Equal(t, 0, s.Poll())
}

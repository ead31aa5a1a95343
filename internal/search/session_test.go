package search

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/gigit-app/gigit/backend/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gateExecutor blocks each Search call until the test releases it, so tests
// control completion order precisely.
type gateExecutor struct {
	gates   map[string]chan struct{}
	results map[string]*models.SearchResult
	errs    map[string]error
}

func newGateExecutor() *gateExecutor {
	return &gateExecutor{
		gates:   make(map[string]chan struct{}),
		results: make(map[string]*models.SearchResult),
		errs:    make(map[string]error),
	}
}

func (g *gateExecutor) expect(key string, result *models.SearchResult, err error) {
	g.gates[key] = make(chan struct{})
	g.results[key] = result
	g.errs[key] = err
}

func (g *gateExecutor) release(key string) {
	close(g.gates[key])
}

func (g *gateExecutor) Search(ctx context.Context, req Request) (*models.SearchResult, error) {
	key := req.Params.Encode()
	if gate, ok := g.gates[key]; ok {
		<-gate
	}
	return g.results[key], g.errs[key]
}

func requestFor(query string) Request {
	raw := url.Values{}
	raw.Set(ParamQuery, query)
	return FromValues(raw)
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for search completion")
	}
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func TestSession_InitialExecuteShowsCatalog(t *testing.T) {
	exec := newGateExecutor()
	catalog := &models.SearchResult{Total: 42}
	exec.expect("", catalog, nil)
	exec.release("")

	session := NewSession(exec, testLogger())

	require.Eventually(t, func() bool {
		result, _, pending := session.Snapshot()
		return !pending && result != nil
	}, 2*time.Second, 10*time.Millisecond)

	result, err, _ := session.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 42, result.Total)
}

func TestSession_LastIssuedWins(t *testing.T) {
	exec := newGateExecutor()
	exec.expect("", &models.SearchResult{}, nil)
	exec.release("")
	session := NewSession(exec, testLogger())

	reqA := requestFor("a")
	reqB := requestFor("b")
	exec.expect(reqA.Params.Encode(), &models.SearchResult{Total: 1}, nil)
	exec.expect(reqB.Params.Encode(), &models.SearchResult{Total: 2}, nil)

	doneA := session.Execute(context.Background(), reqA)
	doneB := session.Execute(context.Background(), reqB)

	// B completes first, then A's stale response arrives
	exec.release(reqB.Params.Encode())
	waitDone(t, doneB)
	exec.release(reqA.Params.Encode())
	waitDone(t, doneA)

	result, err, pending := session.Snapshot()
	require.NoError(t, err)
	assert.False(t, pending)
	assert.Equal(t, 2, result.Total)
}

func TestSession_StaleErrorIsDropped(t *testing.T) {
	exec := newGateExecutor()
	exec.expect("", &models.SearchResult{}, nil)
	exec.release("")
	session := NewSession(exec, testLogger())

	reqA := requestFor("a")
	reqB := requestFor("b")
	exec.expect(reqA.Params.Encode(), nil, errors.New("store unavailable"))
	exec.expect(reqB.Params.Encode(), &models.SearchResult{Total: 7}, nil)

	doneA := session.Execute(context.Background(), reqA)
	doneB := session.Execute(context.Background(), reqB)

	exec.release(reqB.Params.Encode())
	waitDone(t, doneB)
	exec.release(reqA.Params.Encode())
	waitDone(t, doneA)

	result, err, _ := session.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 7, result.Total)
}

func TestSession_LatestErrorSurfaces(t *testing.T) {
	exec := newGateExecutor()
	exec.expect("", &models.SearchResult{}, nil)
	exec.release("")
	session := NewSession(exec, testLogger())

	req := requestFor("broken")
	exec.expect(req.Params.Encode(), nil, errors.New("store unavailable"))
	exec.release(req.Params.Encode())

	waitDone(t, session.Execute(context.Background(), req))

	_, err, pending := session.Snapshot()
	assert.EqualError(t, err, "store unavailable")
	assert.False(t, pending)
}

func TestSession_PendingWhileInFlight(t *testing.T) {
	exec := newGateExecutor()
	exec.expect("", &models.SearchResult{}, nil)
	exec.release("")
	session := NewSession(exec, testLogger())

	req := requestFor("slow")
	exec.expect(req.Params.Encode(), &models.SearchResult{}, nil)

	done := session.Execute(context.Background(), req)

	_, _, pending := session.Snapshot()
	assert.True(t, pending)

	exec.release(req.Params.Encode())
	waitDone(t, done)

	_, _, pending = session.Snapshot()
	assert.False(t, pending)
}

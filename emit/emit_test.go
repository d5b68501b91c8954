package emit_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/krisalay/objstats/emit"
	"github.com/krisalay/objstats/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// ================= TEST SINKS =================
//

type memSink struct {
	mu      sync.Mutex
	rows    []types.Row
	flushes int
	failOn  int64
}

func (m *memSink) Write(_ context.Context, row types.Row) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn != 0 && row.Seq == m.failOn {
		return errors.New("write failed")
	}
	m.rows = append(m.rows, row)
	return nil
}

func (m *memSink) Flush() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushes++
	return nil
}

// blockingSink holds every write until release is closed.
type blockingSink struct {
	memSink
	release chan struct{}
}

func (b *blockingSink) Write(ctx context.Context, row types.Row) error {
	<-b.release
	return b.memSink.Write(ctx, row)
}

func rows(n int) []types.Row {
	out := make([]types.Row, n)
	for i := range out {
		out[i] = types.Row{Seq: int64(i), Key: int64(i % 3), Hit: i%2 == 0, Snapshot: types.Snapshot{Size: 1, TotalRequests: 1}}
	}
	return out
}

//
// ================= WRITE-THROUGH =================
//

func TestWriteThrough(t *testing.T) {
	ctx := context.Background()
	sink := &memSink{}
	p := emit.New(emit.Through, sink, 0)

	for _, r := range rows(5) {
		p.OnSnapshot(ctx, r)
	}
	require.Len(t, sink.rows, 5, "write-through must not buffer")

	require.NoError(t, p.Close())
	assert.Equal(t, 1, sink.flushes)
}

func TestWriteThroughKeepsFirstError(t *testing.T) {
	ctx := context.Background()
	sink := &memSink{failOn: 2}
	p := emit.NewWriteThrough(sink)

	for _, r := range rows(5) {
		p.OnSnapshot(ctx, r)
	}

	assert.ErrorContains(t, p.Close(), "write failed")
	assert.Len(t, sink.rows, 4)
}

//
// ================= WRITE-BACK =================
//

func TestWriteBackDrainsOnClose(t *testing.T) {
	ctx := context.Background()
	sink := &memSink{}
	p := emit.NewWriteBack(sink, 128)

	for _, r := range rows(100) {
		p.OnSnapshot(ctx, r)
	}
	require.NoError(t, p.Close())

	require.Len(t, sink.rows, 100)
	for i, r := range sink.rows {
		assert.Equal(t, int64(i), r.Seq, "rows must keep order")
	}
	assert.Equal(t, int64(0), p.Dropped())
	assert.Equal(t, 1, sink.flushes)

	// second close is harmless
	assert.NoError(t, p.Close())
	assert.Equal(t, 1, sink.flushes)
}

func TestWriteBackDropsWhenFull(t *testing.T) {
	ctx := context.Background()
	sink := &blockingSink{release: make(chan struct{})}
	p := emit.NewWriteBack(sink, 2)

	// worker takes at most one row and blocks; the buffer holds two more
	for _, r := range rows(10) {
		p.OnSnapshot(ctx, r)
	}
	close(sink.release)
	err := p.Close()
	require.ErrorIs(t, err, emit.ErrDropped)

	assert.GreaterOrEqual(t, p.Dropped(), int64(7))
	assert.Equal(t, int64(10), p.Dropped()+int64(len(sink.rows)))
	assert.Equal(t, 1, sink.flushes, "kept rows are still flushed")

	// the loss keeps being reported
	assert.ErrorIs(t, p.Close(), emit.ErrDropped)
}

// slowSink takes a while per row, like a disk under load.
type slowSink struct {
	memSink
	delay time.Duration
}

func (s *slowSink) Write(ctx context.Context, row types.Row) error {
	time.Sleep(s.delay)
	return s.memSink.Write(ctx, row)
}

func TestWriteBackSlowSinkReportsLoss(t *testing.T) {
	ctx := context.Background()
	sink := &slowSink{delay: time.Millisecond}
	p := emit.New(emit.Back, sink, 16)

	for _, r := range rows(1000) {
		p.OnSnapshot(ctx, r)
	}
	err := p.Close()
	require.ErrorIs(t, err, emit.ErrDropped)

	wb, ok := p.(*emit.WriteBack)
	require.True(t, ok)
	assert.Positive(t, wb.Dropped())
	assert.Equal(t, int64(1000), wb.Dropped()+int64(len(sink.rows)))
}

//
// ================= CSV =================
//

func TestCSVSink(t *testing.T) {
	var buf bytes.Buffer
	s := emit.NewCSVSink(&buf)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, types.Row{
		Seq: 3, Key: 5, Hit: true,
		Snapshot: types.Snapshot{Size: 200, TotalRequests: 1, LastRequest: 10, DataType: 2},
	}))
	require.NoError(t, s.Write(ctx, types.Row{
		Seq: 4, Key: 7, Hit: false,
		Snapshot: types.Snapshot{Size: 50.5, TotalRequests: 0, LastRequest: 21, DataType: 1},
	}))
	require.NoError(t, s.Flush())

	want := "seq,key,hit,size,total_requests,last_request,data_type\n" +
		"3,5,true,200,1,10,2\n" +
		"4,7,false,50.5,0,21,1\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVSinkCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := emit.NewCSVSink(&bytes.Buffer{}).Write(ctx, types.Row{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiscard(t *testing.T) {
	var p emit.Policy = emit.Discard{}
	p.OnSnapshot(context.Background(), types.Row{})
	assert.NoError(t, p.Close())
}

package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"cadebeck-hr/internal/events"
	"cadebeck-hr/internal/messaging/kafka"
	"cadebeck-hr/internal/messaging/kafka/consumer"
	"cadebeck-hr/internal/payslip"
	paysliperrors "cadebeck-hr/internal/payslip/errors"
	"cadebeck-hr/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// fakeReader serves queued messages, then blocks until the context ends.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafkago.Message
	committed []int64
	done      chan struct{}
}

func newFakeReader(msgs ...kafkago.Message) *fakeReader {
	return &fakeReader{queue: msgs, done: make(chan struct{})}
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	if len(r.queue) > 0 {
		msg := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()

	select {
	case <-r.done:
	default:
		close(r.done)
	}
	<-ctx.Done()
	return kafkago.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) committedOffsets() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.committed...)
}

func (r *fakeReader) pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}

var fastRetry = consumer.WithBackoff(time.Millisecond, 4*time.Millisecond)

func runUntilDrained(t *testing.T, reader *fakeReader, handle consumer.HandlerFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		consumer.Run(ctx, reader, handle, zap.NewNop(), fastRetry)
		close(stopped)
	}()

	select {
	case <-reader.done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not drain its queue")
	}
	cancel()
	<-stopped
}

// fakeGenerator fails its first calls with failures, in order, then
// returns err.
type fakeGenerator struct {
	mu        sync.Mutex
	calls     []string
	requestID string
	failures  []error
	err       error
}

func (f *fakeGenerator) GeneratePayslip(ctx context.Context, actorID, payrollID string) (payslip.PayslipResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, payrollID)
	f.requestID = contextutil.GetRequestID(ctx)
	if len(f.failures) > 0 {
		err := f.failures[0]
		f.failures = f.failures[1:]
		return payslip.PayslipResponse{}, err
	}
	return payslip.PayslipResponse{PayrollID: payrollID}, f.err
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeSender struct {
	calls []string
}

func (f *fakeSender) SendPayslipEmail(ctx context.Context, actorID, id string) (payslip.EmailResult, error) {
	f.calls = append(f.calls, id)
	return payslip.EmailResult{PayslipID: id, Status: payslip.EmailStatusFailed, Code: "MISSING_CONTACT"}, nil
}

func message(t *testing.T, offset int64, v any) kafkago.Message {
	b, err := json.Marshal(v)
	assert.NoError(t, err)
	return kafkago.Message{
		Offset:  offset,
		Value:   b,
		Headers: []kafkago.Header{{Key: kafka.HeaderRequestID, Value: []byte("req-42")}},
	}
}

func TestHandlePayrollPaid(t *testing.T) {
	gen := &fakeGenerator{}
	reader := newFakeReader(
		message(t, 1, events.PayrollPayslipRequestedEvent{PayrollID: "p-1"}),
		kafkago.Message{Offset: 2, Value: []byte("not json")},
	)

	runUntilDrained(t, reader, consumer.HandlePayrollPaid(gen, zap.NewNop()))

	assert.Equal(t, []string{"p-1"}, gen.calls)
	assert.Equal(t, "req-42", gen.requestID)
	assert.Equal(t, []int64{1, 2}, reader.committed)
}

func TestHandlePayrollPaid_TransientErrorRetriesSameMessage(t *testing.T) {
	gen := &fakeGenerator{failures: []error{paysliperrors.ErrRenderTimeout, errors.New("connection reset")}}
	reader := newFakeReader(
		message(t, 0, events.PayrollPayslipRequestedEvent{PayrollID: "p-0"}),
		message(t, 1, events.PayrollPayslipRequestedEvent{PayrollID: "p-1"}),
	)

	runUntilDrained(t, reader, consumer.HandlePayrollPaid(gen, zap.NewNop()))

	assert.Equal(t, []string{"p-0", "p-0", "p-0", "p-1"}, gen.calls)
	assert.Equal(t, []int64{0, 1}, reader.committedOffsets())
}

func TestHandlePayrollPaid_StopsWithoutCommittingWhileRetrying(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("storage unavailable")}
	reader := newFakeReader(
		message(t, 7, events.PayrollPayslipRequestedEvent{PayrollID: "p-1"}),
		message(t, 8, events.PayrollPayslipRequestedEvent{PayrollID: "p-2"}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		consumer.Run(ctx, reader, consumer.HandlePayrollPaid(gen, zap.NewNop()), zap.NewNop(), fastRetry)
		close(stopped)
	}()

	assert.Eventually(t, func() bool { return gen.callCount() >= 3 }, 2*time.Second, time.Millisecond)
	cancel()
	<-stopped

	assert.Empty(t, reader.committedOffsets())
	assert.Equal(t, 1, reader.pending())
	for _, id := range gen.calls {
		assert.Equal(t, "p-1", id)
	}
}

func TestHandlePayrollPaid_NotFoundIsSkipped(t *testing.T) {
	gen := &fakeGenerator{err: paysliperrors.ErrPayrollNotFound}
	reader := newFakeReader(message(t, 3, events.PayrollPayslipRequestedEvent{PayrollID: "gone"}))

	runUntilDrained(t, reader, consumer.HandlePayrollPaid(gen, zap.NewNop()))

	assert.Equal(t, []int64{3}, reader.committed)
}

func TestHandlePayslipEmailRequested(t *testing.T) {
	sender := &fakeSender{}
	reader := newFakeReader(message(t, 5, events.PayslipEmailRequestedEvent{PayslipID: "s-1"}))

	runUntilDrained(t, reader, consumer.HandlePayslipEmailRequested(sender, zap.NewNop()))

	assert.Equal(t, []string{"s-1"}, sender.calls)
	assert.Equal(t, []int64{5}, reader.committed)
}

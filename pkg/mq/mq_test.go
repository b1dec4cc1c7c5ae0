package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstore-api/pkg/circuitbreaker"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	sent   []published
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, published{exchange, key, msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher(ch, "bookstore.records", nil)

	err := p.Publish(context.Background(), "book.created", map[string]string{"isbn": "978-1"})
	require.NoError(t, err)
	require.Len(t, ch.sent, 1)

	got := ch.sent[0]
	assert.Equal(t, "bookstore.records", got.exchange)
	assert.Equal(t, "book.created", got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.Equal(t, "978-1", body["isbn"])
}

func TestPublisher_PublishErrors(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel/connection is not open")}
	p := newPublisher(ch, "bookstore.records", nil)

	err := p.Publish(context.Background(), "customer.created", struct{}{})
	assert.ErrorContains(t, err, "发布消息失败")

	err = p.Publish(context.Background(), "customer.created", make(chan int))
	assert.ErrorContains(t, err, "消息序列化失败")
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := newPublisher(ch, "", nil)
	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestPublisher_BreakerOpens(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel/connection is not open")}
	p := newPublisher(ch, "bookstore.records", nil)

	for i := 0; i < 5; i++ {
		require.Error(t, p.Publish(context.Background(), "book.created", struct{}{}))
	}

	ch.err = nil
	err := p.Publish(context.Background(), "book.created", struct{}{})
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
	assert.Empty(t, ch.sent)
}

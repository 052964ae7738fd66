package broadcast

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSend_FastSubscriberSeesEverythingInOrder(t *testing.T) {
	b := New[int]("test", 16)
	sub := b.Subscribe()

	for i := 0; i < 10; i++ {
		b.Send(i)
	}
	b.Close()

	got := []int{}
	for v := range sub.C() {
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
	require.NoError(t, sub.Err())
}

func TestSend_NoSubscribersIsSilentDrop(t *testing.T) {
	b := New[string]("test", 4)
	// Must not panic or block.
	b.Send("into the void")
}

func TestSend_SlowSubscriberIsEvictedOthersUnaffected(t *testing.T) {
	b := New[int]("test", 2)
	slow := b.Subscribe()
	fast := b.Subscribe()

	done := make(chan struct{})
	var fastGot []int
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for v := range fast.C() {
			fastGot = append(fastGot, v)
		}
		close(done)
	}()

	// The slow subscriber never reads; capacity 2 means the third send
	// overflows it.
	for i := 0; i < 10; i++ {
		b.Send(i)
	}
	b.Close()
	wg.Wait()
	<-done

	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, fastGot)
	require.NoError(t, fast.Err())

	// The slow one was closed with a lag error after buffering capacity.
	buffered := []int{}
	for v := range slow.C() {
		buffered = append(buffered, v)
	}
	require.Equal(t, []int{0, 1}, buffered)
	require.ErrorIs(t, slow.Err(), ErrSlowSubscriber)
}

func TestUnsubscribe_CleanClose(t *testing.T) {
	b := New[int]("test", 4)
	sub := b.Subscribe()
	sub.Unsubscribe()

	_, ok := <-sub.C()
	require.False(t, ok)
	require.NoError(t, sub.Err())

	// Idempotent.
	sub.Unsubscribe()

	// Later sends don't reach it and don't panic.
	b.Send(1)
}

func TestClose_SendBecomesNoOpAndSubscribeReturnsClosed(t *testing.T) {
	b := New[int]("test", 4)
	b.Close()
	b.Send(1)

	sub := b.Subscribe()
	_, ok := <-sub.C()
	require.False(t, ok)
}

func TestSend_ConcurrentProducers(t *testing.T) {
	b := New[int]("test", 1024)
	sub := b.Subscribe()

	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				b.Send(1)
			}
		}()
	}
	wg.Wait()
	b.Close()

	total := 0
	for v := range sub.C() {
		total += v
	}
	require.Equal(t, 800, total)
	require.NoError(t, sub.Err())
}

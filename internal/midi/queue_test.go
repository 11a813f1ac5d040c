package midi

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueOrder(t *testing.T) {
	var q Queue

	_, ok := q.Pop()
	assert.False(t, ok)

	q.Push([]byte{1})
	q.Push([]byte{2})
	q.Push([]byte{3})
	assert.Equal(t, 3, q.Len())

	for _, want := range []byte{1, 2, 3} {
		msg, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, []byte{want}, msg)
	}
	_, ok = q.Pop()
	assert.False(t, ok)
	assert.Zero(t, q.Len())
}

func TestQueueCopies(t *testing.T) {
	var q Queue
	buf := []byte{144, 36, 100}
	q.Push(buf)
	buf[2] = 0

	msg, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, []byte{144, 36, 100}, msg)
}

func TestQueueConcurrentProducer(t *testing.T) {
	var q Queue
	const n = 1000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			q.Push([]byte{byte(i >> 8), byte(i)})
		}
	}()

	got := make([]int, 0, n)
	for len(got) < n {
		if msg, ok := q.Pop(); ok {
			got = append(got, int(msg[0])<<8|int(msg[1]))
		}
	}
	wg.Wait()

	for i, v := range got {
		require.Equal(t, i, v)
	}
}

func TestMatchPort(t *testing.T) {
	names := []string{"IAC Driver Bus 1", "Ableton Push 2 Live Port", "Ableton Push 2 User Port"}

	tests := []struct {
		want  string
		index int
		ok    bool
	}{
		{"Ableton Push 2 Live Port", 1, true},
		{"push 2 user", 2, true},
		{"ableton", 1, true},
		{"Launchpad", -1, false},
		{"", -1, false},
	}
	for _, tt := range tests {
		i, ok := MatchPort(names, tt.want)
		assert.Equal(t, tt.ok, ok, tt.want)
		assert.Equal(t, tt.index, i, tt.want)
	}
}

package pqueue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olekrav/wayfind/pqueue"
)

func TestPopMin_EmptyQueue(t *testing.T) {
	q := pqueue.New(0)
	_, ok := q.PopMin()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestPopMin_ReturnsAscendingKeys(t *testing.T) {
	q := pqueue.New(8)
	q.Push(pqueue.Item{Key: 5, Vertex: 0})
	q.Push(pqueue.Item{Key: 1, Vertex: 1})
	q.Push(pqueue.Item{Key: 3, Vertex: 2})
	q.Push(pqueue.Item{Key: 2, Vertex: 3})

	var keys []float64
	for {
		it, ok := q.PopMin()
		if !ok {
			break
		}
		keys = append(keys, it.Key)
	}
	assert.Equal(t, []float64{1, 2, 3, 5}, keys)
}

func TestPush_StaleEntriesCoexist(t *testing.T) {
	// The same vertex may be enqueued several times with different keys;
	// the smallest key must surface first and the others remain poppable.
	q := pqueue.New(4)
	q.Push(pqueue.Item{Key: 9, Vertex: 7, From: pqueue.NoVertex})
	q.Push(pqueue.Item{Key: 4, Vertex: 7, From: 2})
	q.Push(pqueue.Item{Key: 6, Vertex: 7, From: 3})

	it, ok := q.PopMin()
	require.True(t, ok)
	assert.Equal(t, 4.0, it.Key)
	assert.Equal(t, 7, it.Vertex)
	assert.Equal(t, 2, it.From)
	assert.Equal(t, 2, q.Len())
}

func TestPopMin_RandomizedHeapProperty(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	q := pqueue.New(256)
	want := make([]float64, 0, 256)
	for i := 0; i < 256; i++ {
		k := r.Float64() * 100
		want = append(want, k)
		q.Push(pqueue.Item{Key: k, Vertex: i})
	}
	sort.Float64s(want)

	got := make([]float64, 0, 256)
	for {
		it, ok := q.PopMin()
		if !ok {
			break
		}
		got = append(got, it.Key)
	}
	assert.Equal(t, want, got)
}

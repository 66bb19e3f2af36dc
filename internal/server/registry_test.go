package server

import (
	"fmt"
	"sync"
	"testing"

	"github.com/nhdewitt/embedhttp/internal/request"
	"github.com/nhdewitt/embedhttp/internal/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop() *Handler {
	return NewHandler(func(*request.Request, *response.Response) {})
}

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()
	get, post, other := noop(), noop(), noop()
	r.Register(request.MethodGet, "/coffee", get)
	r.Register(request.MethodPost, "/coffee", post)
	r.Register(request.MethodGet, "/tea", other)

	assert.Same(t, get, r.Resolve(request.MethodGet, "/coffee"))
	assert.Same(t, post, r.Resolve(request.MethodPost, "/coffee"))
	assert.Same(t, other, r.Resolve(request.MethodGet, "/tea"))

	// exact match only
	assert.Nil(t, r.Resolve(request.MethodPut, "/coffee"))
	assert.Nil(t, r.Resolve(request.MethodGet, "/coffee/"))
	assert.Nil(t, r.Resolve(request.MethodGet, "/Coffee"))
	assert.Nil(t, r.Resolve(request.MethodGet, "/cof"))
	assert.Nil(t, r.Resolve(request.MethodUnknown, "/coffee"))
}

func TestRegistryFirstMatchWins(t *testing.T) {
	r := NewRegistry()
	first, second := noop(), noop()
	r.Register(request.MethodGet, "/dup", first)
	r.Register(request.MethodGet, "/dup", second)
	require.Equal(t, 2, r.Len())

	assert.Same(t, first, r.Resolve(request.MethodGet, "/dup"))

	r.Unregister(first)
	assert.Equal(t, 1, r.Len())
	assert.Same(t, second, r.Resolve(request.MethodGet, "/dup"))

	r.Unregister(second)
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, r.Resolve(request.MethodGet, "/dup"))
}

func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	h, other := noop(), noop()
	r.Register(request.MethodGet, "/a", h)
	r.Register(request.MethodGet, "/b", other)
	r.Register(request.MethodPost, "/a", h)

	// only the first entry for h goes
	r.Unregister(h)
	assert.Equal(t, 2, r.Len())
	assert.Nil(t, r.Resolve(request.MethodGet, "/a"))
	assert.Same(t, h, r.Resolve(request.MethodPost, "/a"))
	assert.Same(t, other, r.Resolve(request.MethodGet, "/b"))

	// unknown handler is a no-op
	r.Unregister(noop())
	assert.Equal(t, 2, r.Len())

	// same func, different identity
	fn := func(*request.Request, *response.Response) {}
	a, b := NewHandler(fn), NewHandler(fn)
	r.Register(request.MethodPut, "/x", a)
	r.Unregister(b)
	assert.Same(t, a, r.Resolve(request.MethodPut, "/x"))
}

func TestRegistryConcurrentResolve(t *testing.T) {
	r := NewRegistry()
	handlers := make([]*Handler, 50)
	for i := range handlers {
		handlers[i] = noop()
		r.Register(request.MethodGet, fmt.Sprintf("/h/%d", i), handlers[i])
	}

	var wg sync.WaitGroup
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				idx := i % len(handlers)
				if r.Resolve(request.MethodGet, fmt.Sprintf("/h/%d", idx)) != handlers[idx] {
					t.Errorf("wrong handler for /h/%d", idx)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestRegistryConcurrentMutation(t *testing.T) {
	r := NewRegistry()
	stable := noop()
	r.Register(request.MethodGet, "/stable", stable)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			h := noop()
			r.Register(request.MethodGet, "/churn", h)
			r.Unregister(h)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if r.Resolve(request.MethodGet, "/stable") != stable {
				t.Error("lost stable route")
				return
			}
		}
	}()
	wg.Wait()

	assert.Equal(t, 1, r.Len())
}

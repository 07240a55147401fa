package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomPort(t *testing.T) {
	port := GetRandomPort(t)
	assert.Greater(t, port, 0)
	assert.Less(t, port, 65536)
}

func TestGetRandomPortUnique(t *testing.T) {
	ports := make(map[int]bool)
	for range 10 {
		port := GetRandomPort(t)
		assert.False(t, ports[port], "Port %d was already used", port)
		ports[port] = true
	}
}

func TestGetRandomListeningAddr(t *testing.T) {
	addr := GetRandomListeningAddr(t)
	assert.Contains(t, addr, "127.0.0.1:")
}

func TestThreadSafeBuffer(t *testing.T) {
	var buf ThreadSafeBuffer

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := buf.Write([]byte("x"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, buf.String(), 10)
	buf.Reset()
	assert.Empty(t, buf.String())
}

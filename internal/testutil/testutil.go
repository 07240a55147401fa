// Package testutil holds small helpers shared across test packages.
package testutil

import (
	"bytes"
	"fmt"
	"net"
	"sync"
	"testing"
)

// ThreadSafeBuffer is a bytes.Buffer safe for use as a log sink from
// multiple goroutines.
type ThreadSafeBuffer struct {
	buffer bytes.Buffer
	mutex  sync.Mutex
}

// Write implements io.Writer
func (b *ThreadSafeBuffer) Write(p []byte) (n int, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.Write(p)
}

// String returns the accumulated buffer as a string
func (b *ThreadSafeBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.String()
}

// Reset resets the buffer to be empty
func (b *ThreadSafeBuffer) Reset() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.buffer.Reset()
}

var (
	portMutex sync.Mutex
	usedPorts = make(map[int]struct{})
)

// GetRandomPort returns a free TCP port that no other test in this process
// has been handed yet.
func GetRandomPort(t *testing.T) int {
	t.Helper()
	portMutex.Lock()
	defer portMutex.Unlock()

	for {
		listener, err := net.Listen("tcp", ":0")
		if err != nil {
			t.Fatalf("Failed to get random port: %v", err)
		}
		port := listener.Addr().(*net.TCPAddr).Port
		if err := listener.Close(); err != nil {
			t.Fatalf("Failed to close listener: %v", err)
		}

		if _, taken := usedPorts[port]; taken {
			continue
		}
		usedPorts[port] = struct{}{}
		return port
	}
}

// GetRandomListeningAddr returns a localhost host:port string with a free
// port, suitable for a listen address in configs under test.
func GetRandomListeningAddr(t *testing.T) string {
	t.Helper()
	return fmt.Sprintf("127.0.0.1:%d", GetRandomPort(t))
}

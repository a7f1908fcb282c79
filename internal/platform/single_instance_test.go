package platform

import (
	"bufio"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleInstanceGuard(t *testing.T) {
	name := "pomodoro-test-" + t.Name()

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = guard.Release() })

	assert.Equal(t, instanceAddress(name), guard.Address())

	_, err = AcquireSingleInstance(name)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadyRunning)

	activated := make(chan struct{}, 1)
	guard.OnActivate(func() {
		activated <- struct{}{}
	})

	second, err := AcquireOrActivate(name)
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrAlreadyRunning)
	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func TestForeignListenerIsNotMistakenForInstance(t *testing.T) {
	name := "pomodoro-test-" + t.Name()

	listener, err := net.Listen("tcp", instanceAddress(name))
	require.NoError(t, err)
	t.Cleanup(func() { _ = listener.Close() })
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			_, _ = bufio.NewReader(conn).ReadString('\n')
			_, _ = io.WriteString(conn, "HTTP/1.1 400 Bad Request\r\n")
			_ = conn.Close()
		}
	}()

	guard, err := AcquireOrActivate(name)
	assert.Nil(t, guard)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAlreadyRunning)
	assert.ErrorIs(t, ActivateRunning(name), ErrNotInstance)
}

func TestReleaseAllowsReacquire(t *testing.T) {
	name := "pomodoro-test-" + t.Name()

	guard, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestPortFromNameIsStableAndInRange(t *testing.T) {
	port := portFromName("pomodoro")

	assert.Equal(t, port, portFromName("pomodoro"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}

func TestNilGuard(t *testing.T) {
	var guard *InstanceGuard

	assert.NoError(t, guard.Release())
	assert.Empty(t, guard.Address())
}

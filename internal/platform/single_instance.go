package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"net"
	"time"
)

// ErrAlreadyRunning indicates another instance holds the lock and was raised.
var ErrAlreadyRunning = errors.New("instance already running")

// ErrNotInstance indicates the lock port answered but not as an instance.
var ErrNotInstance = errors.New("port held by another program")

const (
	activateMessage = "activate\n"
	ackMessage      = "ok\n"
	activateTimeout = time.Second
)

// InstanceGuard holds the single-instance lock.
type InstanceGuard struct {
	listener net.Listener
	address  string
}

// AcquireSingleInstance attempts to bind a deterministic localhost port.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := instanceAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", address, err)
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// AcquireOrActivate takes the lock, or raises the instance holding it and
// returns ErrAlreadyRunning. Anything else on the port is reported as the
// original listen error.
func AcquireOrActivate(appName string) (*InstanceGuard, error) {
	guard, err := AcquireSingleInstance(appName)
	if err == nil {
		return guard, nil
	}
	if activateErr := ActivateRunning(appName); activateErr != nil {
		return nil, err
	}
	return nil, ErrAlreadyRunning
}

// OnActivate calls handler whenever a later launch asks this instance to come
// forward. It serves until Release.
func (guard *InstanceGuard) OnActivate(handler func()) {
	go func() {
		for {
			conn, err := guard.listener.Accept()
			if err != nil {
				return
			}
			guard.serve(conn, handler)
		}
	}()
}

// ActivateRunning asks the instance holding appName's lock to show itself.
func ActivateRunning(appName string) error {
	conn, err := net.DialTimeout("tcp", instanceAddress(appName), activateTimeout)
	if err != nil {
		return fmt.Errorf("activate running instance: %w", err)
	}
	defer conn.Close()

	_ = conn.SetDeadline(time.Now().Add(activateTimeout))
	if _, err := io.WriteString(conn, activateMessage); err != nil {
		return fmt.Errorf("activate running instance: %w", err)
	}
	reply, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return fmt.Errorf("activate running instance: %w", err)
	}
	if reply != ackMessage {
		return ErrNotInstance
	}
	return nil
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func (guard *InstanceGuard) serve(conn net.Conn, handler func()) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(activateTimeout))

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil || line != activateMessage {
		return
	}
	if _, err := io.WriteString(conn, ackMessage); err != nil {
		return
	}
	if handler != nil {
		handler()
	}
}

func instanceAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}

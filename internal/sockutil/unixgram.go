// Package sockutil provides the host-local datagram socket plumbing
// shared by the server and the client stub library. It is deliberately
// thin: spec.md §1 treats socket setup as an external collaborator, but
// the binaries still need a real AF_UNIX/SOCK_DGRAM socket to run on.
package sockutil

import (
	"fmt"
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// ListenUnixgram binds a server-side Unix datagram socket at path,
// removing any stale socket file left over from a previous run first —
// the Go equivalent of main.c's unlink(server_socket_name) before bind.
func ListenUnixgram(path string) (*net.UnixConn, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("sockutil: removing stale socket %s: %w", path, err)
	}

	addr, err := net.ResolveUnixAddr("unixgram", path)
	if err != nil {
		return nil, fmt.Errorf("sockutil: resolving %s: %w", path, err)
	}
	conn, err := net.ListenUnixgram("unixgram", addr)
	if err != nil {
		return nil, fmt.Errorf("sockutil: listening on %s: %w", path, err)
	}
	return conn, nil
}

// DialUnixgram binds a client-side Unix datagram socket at clientPath and
// connects it to serverPath, the Go equivalent of tfsMount's client-side
// bind plus the server address it keeps around for every send.
func DialUnixgram(serverPath, clientPath string) (*net.UnixConn, error) {
	if err := os.Remove(clientPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("sockutil: removing stale socket %s: %w", clientPath, err)
	}

	local, err := net.ResolveUnixAddr("unixgram", clientPath)
	if err != nil {
		return nil, fmt.Errorf("sockutil: resolving %s: %w", clientPath, err)
	}
	remote, err := net.ResolveUnixAddr("unixgram", serverPath)
	if err != nil {
		return nil, fmt.Errorf("sockutil: resolving %s: %w", serverPath, err)
	}

	conn, err := net.DialUnix("unixgram", local, remote)
	if err != nil {
		return nil, fmt.Errorf("sockutil: dialing %s from %s: %w", serverPath, clientPath, err)
	}
	return conn, nil
}

// DefaultRecvBufferBytes and DefaultSendBufferBytes are the kernel socket
// buffer sizes TuneBuffers applies to both the server's listening socket
// and every client's dialed socket, sized generously above the default
// wire limit (state.MaxInputSize) so a burst of concurrent requests or
// replies queues in the kernel rather than getting dropped.
const (
	DefaultRecvBufferBytes = 1 << 20
	DefaultSendBufferBytes = 1 << 20
)

// TuneBuffers sets the kernel socket receive/send buffer sizes on conn.
// stdlib net exposes no hook for this; x/sys/unix is the one place in
// this codebase that reaches below net.Conn to raw setsockopt(2), the
// same role it plays for low-level socket tuning elsewhere in the pack.
// A zero size leaves that buffer at its OS default.
func TuneBuffers(conn *net.UnixConn, rcvBuf, sndBuf int) error {
	if rcvBuf <= 0 && sndBuf <= 0 {
		return nil
	}

	raw, err := conn.SyscallConn()
	if err != nil {
		return fmt.Errorf("sockutil: obtaining raw conn: %w", err)
	}

	var sockErr error
	ctrlErr := raw.Control(func(fd uintptr) {
		if rcvBuf > 0 {
			if sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_RCVBUF, rcvBuf); sockErr != nil {
				return
			}
		}
		if sndBuf > 0 {
			sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_SNDBUF, sndBuf)
		}
	})
	if ctrlErr != nil {
		return fmt.Errorf("sockutil: tuning buffers: %w", ctrlErr)
	}
	return sockErr
}

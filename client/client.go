// Package client is a Go port of the original tecnicofs client stub
// library (client/tecnicofs-client-api.c in original_source): it marshals
// filesystem operations into the wire protocol described in spec.md §6
// and sends them to a running server over a host-local datagram socket.
//
// spec.md §1 treats the client-side stub as an external collaborator —
// uninteresting plumbing from the engine's point of view — but it still
// has to exist and work for anything to exercise the server end to end.
package client

import (
	"encoding/binary"
	"fmt"
	"log"
	"net"
	"os"
	"sync/atomic"

	"github.com/RicardoMartins55/tecnico-filesystem/internal/sockutil"
)

// mountSeq disambiguates clientPath across multiple Mount calls within the
// same process: the original C client only ever mounted once per process,
// so its "/tmp/<pid>" path was unique by construction, but a Go process can
// hold many concurrent Clients (every test in this repo's client fan-out
// scenarios does exactly that).
var mountSeq uint64

// Client is a mounted connection to one tecnicofs server, the Go
// equivalent of the C library's global client_fd/server_socket state
// (tfsMount/tfsUnmount), scoped to a value instead of process globals.
type Client struct {
	clientPath string
	conn       *net.UnixConn
}

// Mount opens a client-side socket bound under os.TempDir, named after
// the running process's pid the way the original client_path ("/tmp/<pid>")
// was, and connects it to the server listening at serverSocketPath.
func Mount(serverSocketPath string) (*Client, error) {
	seq := atomic.AddUint64(&mountSeq, 1)
	clientPath := fmt.Sprintf("%s/tecnicofs-client-%d-%d", os.TempDir(), os.Getpid(), seq)

	conn, err := sockutil.DialUnixgram(serverSocketPath, clientPath)
	if err != nil {
		return nil, err
	}
	if err := sockutil.TuneBuffers(conn, sockutil.DefaultRecvBufferBytes, sockutil.DefaultSendBufferBytes); err != nil {
		log.Printf("client: socket buffer tuning: %v", err)
	}
	return &Client{clientPath: clientPath, conn: conn}, nil
}

// Unmount closes the client socket and removes its backing file, the Go
// equivalent of tfsUnmount.
func (c *Client) Unmount() error {
	err := c.conn.Close()
	os.Remove(c.clientPath)
	return err
}

// Create asks the server to create a file ('f') or directory ('d') at
// path. Mirrors tfsCreate.
func (c *Client) Create(path string, nodeType byte) (int, error) {
	return c.roundTrip(fmt.Sprintf("c %s %c", path, nodeType))
}

// Delete asks the server to remove path. Mirrors tfsDelete.
func (c *Client) Delete(path string) (int, error) {
	return c.roundTrip(fmt.Sprintf("d %s", path))
}

// Lookup asks the server to resolve path, returning its inumber on
// success. Mirrors tfsLookup.
func (c *Client) Lookup(path string) (int, error) {
	return c.roundTrip(fmt.Sprintf("l %s", path))
}

// Move asks the server to relocate from to to. Mirrors tfsMove.
func (c *Client) Move(from, to string) (int, error) {
	return c.roundTrip(fmt.Sprintf("m %s %s", from, to))
}

// Print asks the server to dump its tree to outFile, a path on the
// server's own filesystem. Mirrors tfsPrint.
func (c *Client) Print(outFile string) (int, error) {
	return c.roundTrip(fmt.Sprintf("p %s", outFile))
}

// roundTrip sends one already-formatted request line and decodes the
// 4-byte integer reply.
func (c *Client) roundTrip(line string) (int, error) {
	if _, err := c.conn.Write([]byte(line)); err != nil {
		return 0, fmt.Errorf("client: send %q: %w", line, err)
	}

	var buf [4]byte
	n, err := c.conn.Read(buf[:])
	if err != nil {
		return 0, fmt.Errorf("client: recv reply to %q: %w", line, err)
	}
	if n != 4 {
		return 0, fmt.Errorf("client: short reply to %q (%d bytes)", line, n)
	}
	return int(int32(binary.LittleEndian.Uint32(buf[:]))), nil
}

// Command tfsserver runs the tecnicofs namespace service: a fixed pool of
// worker goroutines serving filesystem operations over a host-local
// datagram socket.
//
// Usage mirrors main.c's argument handling exactly (spec.md §6):
//
//	tfsserver <numberThreads> <server_socket_path>
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/RicardoMartins55/tecnico-filesystem/dispatch"
	"github.com/RicardoMartins55/tecnico-filesystem/internal/sockutil"
	"github.com/RicardoMartins55/tecnico-filesystem/tree"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: tfsserver <numberThreads> <server_socket_path>")
	}
	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	numThreads, err := strconv.Atoi(flag.Arg(0))
	if err != nil || numThreads <= 0 {
		log.Fatalf("tfsserver: numberThreads must be a positive integer, got %q", flag.Arg(0))
	}
	socketPath := flag.Arg(1)

	conn, err := sockutil.ListenUnixgram(socketPath)
	if err != nil {
		log.Fatalf("tfsserver: %v", err)
	}
	if err := sockutil.TuneBuffers(conn, sockutil.DefaultRecvBufferBytes, sockutil.DefaultSendBufferBytes); err != nil {
		log.Printf("tfsserver: socket buffer tuning: %v", err)
	}

	engine := tree.New()
	srv := dispatch.NewServer(engine, conn, log.Default())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Printf("tfsserver: listening on %s with %d workers", socketPath, numThreads)
	if err := srv.Serve(ctx, numThreads); err != nil {
		log.Fatalf("tfsserver: %v", err)
	}
}

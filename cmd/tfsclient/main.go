// Command tfsclient is a small line-oriented REPL over the client stub
// library, useful for poking a running tfsserver by hand. It supplements
// a feature original_source had (a standalone client driver) that the
// distilled spec treats as out of scope for the engine but doesn't
// forbid building.
//
// Each line on stdin is one command in the exact wire syntax from
// spec.md §6, e.g.:
//
//	c /a d
//	c /a/b f
//	l /a/b
//	m /a/b /a/c
//	p /tmp/snapshot.txt
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/RicardoMartins55/tecnico-filesystem/client"
)

func main() {
	socketPath := flag.String("socket", "", "path to the server's socket")
	flag.Parse()

	if *socketPath == "" {
		fmt.Fprintln(os.Stderr, "usage: tfsclient -socket <server_socket_path>")
		os.Exit(2)
	}

	c, err := client.Mount(*socketPath)
	if err != nil {
		log.Fatalf("tfsclient: %v", err)
	}
	defer c.Unmount()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result, err := run(c, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(result)
	}
}

func run(c *client.Client, line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, fmt.Errorf("malformed command %q", line)
	}

	switch fields[0] {
	case "c":
		if len(fields) < 3 {
			return 0, fmt.Errorf("create needs a node type: %q", line)
		}
		return c.Create(fields[1], fields[2][0])
	case "d":
		return c.Delete(fields[1])
	case "l":
		return c.Lookup(fields[1])
	case "m":
		if len(fields) < 3 {
			return 0, fmt.Errorf("move needs a destination: %q", line)
		}
		return c.Move(fields[1], fields[2])
	case "p":
		return c.Print(fields[1])
	default:
		return 0, fmt.Errorf("unknown opcode %q", fields[0])
	}
}

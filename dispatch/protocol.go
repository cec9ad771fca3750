package dispatch

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// request is a single parsed wire request: "<op> <arg1>[ <arg2>]" (§6).
type request struct {
	op   byte
	arg1 string
	arg2 string
}

// parseRequest decodes a raw datagram payload into a request. Trailing
// NUL bytes and surrounding whitespace are stripped first, matching the
// original protocol's NUL-terminated ASCII line.
func parseRequest(raw []byte) (request, error) {
	line := strings.TrimRight(string(raw), "\x00")
	line = strings.TrimSpace(line)

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return request{}, fmt.Errorf("dispatch: malformed request %q", line)
	}
	if len(fields[0]) != 1 {
		return request{}, fmt.Errorf("dispatch: malformed opcode %q", fields[0])
	}

	req := request{op: fields[0][0], arg1: fields[1]}
	if len(fields) >= 3 {
		req.arg2 = fields[2]
	}
	return req, nil
}

// encodeReply packs a single result as a 4-byte signed integer in host
// byte order, matching the original protocol's "int output[1]" reply.
//
// This reimplementation targets little-endian hosts (amd64/arm64), the
// overwhelming majority of deployment targets for this service; a
// big-endian host would need binary.BigEndian here instead.
func encodeReply(result int32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, uint32(result))
	return buf
}

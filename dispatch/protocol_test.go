package dispatch

import (
	"encoding/binary"
	"testing"
)

func TestParseRequest(t *testing.T) {
	cases := []struct {
		raw     string
		wantOp  byte
		wantA1  string
		wantA2  string
		wantErr bool
	}{
		{"c /a d\x00", 'c', "/a", "d", false},
		{"l /a\x00", 'l', "/a", "", false},
		{"m /a /b\x00", 'm', "/a", "/b", false},
		{"p /tmp/out\x00", 'p', "/tmp/out", "", false},
		{"x\x00", 0, "", "", true},
		{"\x00\x00\x00", 0, "", "", true},
	}

	for _, c := range cases {
		got, err := parseRequest([]byte(c.raw))
		if c.wantErr {
			if err == nil {
				t.Errorf("parseRequest(%q): expected error, got %+v", c.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseRequest(%q): unexpected error: %v", c.raw, err)
			continue
		}
		if got.op != c.wantOp || got.arg1 != c.wantA1 || got.arg2 != c.wantA2 {
			t.Errorf("parseRequest(%q) = %+v, want op=%q arg1=%q arg2=%q",
				c.raw, got, c.wantOp, c.wantA1, c.wantA2)
		}
	}
}

func TestEncodeReplyRoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, 41, -1} {
		buf := encodeReply(v)
		if len(buf) != 4 {
			t.Fatalf("encodeReply(%d) produced %d bytes, want 4", v, len(buf))
		}
		if got := int32(binary.LittleEndian.Uint32(buf)); got != v {
			t.Fatalf("encodeReply(%d) decodes back to %d", v, got)
		}
	}
}

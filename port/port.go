/*
Copyright 2026 Uriq Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package port provides value types for transport ports, inclusive port
// ranges and port sets, plus the transport protocol enumeration they pair
// with.
package port

//go:generate errtrace -w .

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

// Error is a sentinel error kind for this package.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrBadPort reports input that is not a port number in 1..65535.
	ErrBadPort Error = "invalid port"

	// ErrBadRange reports input that is not a port or "lo-hi" port range.
	ErrBadRange Error = "invalid port range"

	// ErrBadProto reports an unknown transport protocol name.
	ErrBadProto Error = "invalid protocol"
)

// Proto is a transport-layer protocol.
type Proto uint8

const (
	// TCP is the Transmission Control Protocol.
	TCP Proto = iota
	// UDP is the User Datagram Protocol.
	UDP
	// SCTP is the Stream Control Transmission Protocol.
	SCTP
	// DCCP is the Datagram Congestion Control Protocol.
	DCCP
)

var protoNames = [...]string{"tcp", "udp", "sctp", "dccp"}

// String returns the lowercase protocol name, or "proto(N)" for values
// outside the enumeration.
func (p Proto) String() string {
	if int(p) < len(protoNames) {
		return protoNames[p]
	}
	return fmt.Sprintf("proto(%d)", uint8(p))
}

// ParseProto parses a protocol name, ASCII case-insensitively.
func ParseProto(s string) (Proto, error) {
	for p, name := range protoNames {
		if strings.EqualFold(s, name) {
			return Proto(p), nil
		}
	}
	return 0, errtrace.Wrap(fmt.Errorf("%w %q", ErrBadProto, s))
}

// MarshalText implements [encoding.TextMarshaler].
func (p Proto) MarshalText() ([]byte, error) {
	if int(p) >= len(protoNames) {
		return nil, errtrace.Wrap(fmt.Errorf("%w: value %d", ErrBadProto, uint8(p)))
	}
	return []byte(protoNames[p]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Proto) UnmarshalText(text []byte) error {
	parsed, err := ParseProto(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*p = parsed
	return nil
}

// Port is a transport port number. Zero is "no port"; [Port.Valid] gates
// it.
type Port uint16

// ParsePort parses a decimal port number in 1..65535.
func ParsePort(s string) (Port, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil || n == 0 {
		return 0, errtrace.Wrap(fmt.Errorf("%w %q", ErrBadPort, s))
	}
	return Port(n), nil
}

// Valid reports whether p is a usable (non-zero) port.
func (p Port) Valid() bool { return p != 0 }

// String returns the decimal form.
func (p Port) String() string { return strconv.FormatUint(uint64(p), 10) }

//go:build !linux && !darwin

package server

import "net"

// GetListener falls back to net.Listen on platforms without socket activation.
func GetListener(addr string) (net.Listener, error) {
	return net.Listen("tcp", addr)
}

package domain

import "strconv"

const (
	// DefaultTime is the in-game time reported when the server advertises none.
	DefaultTime = "00:00"
	// DefaultAcceleration is the day and night time acceleration used when the server advertises none.
	DefaultAcceleration = 1
)

// ServerInfo is the normalized record of one DayZ server served by the lookup API.
type ServerInfo struct {
	Name        string
	Address     string // IPv4 address without port
	Port        int    // game port
	Players     Players
	Environment Environment
}

// Players holds the population of a server.
type Players struct {
	Current int
	Queue   int
	Max     int
}

// Environment holds the in-game world settings decoded from the server tags.
type Environment struct {
	Map               string
	Time              string // "HH:MM"
	DayAcceleration   int
	NightAcceleration int
}

// ServerKey identifies a server by address and game port.
type ServerKey struct {
	Address string
	Port    int
}

// String returns the key in address:port form.
func (k ServerKey) String() string {
	return k.Address + ":" + strconv.Itoa(k.Port)
}

// Key returns the lookup key of the server.
func (s ServerInfo) Key() ServerKey {
	return ServerKey{Address: s.Address, Port: s.Port}
}

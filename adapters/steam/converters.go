package steam

import (
	"fmt"
	"strings"

	"dayzlookup/domain"
	"dayzlookup/helpers"
)

// serverListResponse is the JSON shape of GetServerList: { "response": { "servers": [ rawServer ] } }.
type serverListResponse struct {
	Response *struct {
		Servers []rawServer `json:"servers"`
	} `json:"response"`
}

// rawServer is one element of the servers array. Pointer fields tell an absent value from a zero one.
type rawServer struct {
	Name       string  `json:"name"`
	Addr       *string `json:"addr"`
	Gameport   *int    `json:"gameport"`
	Gametype   string  `json:"gametype"`
	Players    *int    `json:"players"`
	MaxPlayers *int    `json:"max_players"`
	Map        string  `json:"map"`
}

// fromRawServer converts one upstream record to domain.ServerInfo.
// The address is taken from addr without its port; the port always comes from gameport.
// Returns an error when addr or gameport is missing or gameport is out of range.
func fromRawServer(raw rawServer) (domain.ServerInfo, error) {
	addr := helpers.Value(raw.Addr)
	if addr == "" {
		return domain.ServerInfo{}, fmt.Errorf("server %q has no addr", raw.Name)
	}
	if raw.Gameport == nil {
		return domain.ServerInfo{}, fmt.Errorf("server %q (%s) has no gameport", raw.Name, addr)
	}
	port := *raw.Gameport
	if port < 1 || port > 65535 {
		return domain.ServerInfo{}, fmt.Errorf("server %q (%s) has invalid gameport %d", raw.Name, addr, port)
	}
	address, _, _ := strings.Cut(addr, ":")

	info := domain.ServerInfo{
		Name:    raw.Name,
		Address: address,
		Port:    port,
		Players: domain.Players{
			Current: helpers.Value(raw.Players),
			Max:     helpers.Value(raw.MaxPlayers),
		},
		Environment: domain.Environment{
			Map:               raw.Map,
			Time:              domain.DefaultTime,
			DayAcceleration:   domain.DefaultAcceleration,
			NightAcceleration: domain.DefaultAcceleration,
		},
	}
	domain.DecodeFlags(domain.SplitFlags(raw.Gametype)).Apply(&info)

	return info, nil
}

// fromServerList normalizes every record. One bad record fails the whole list.
func fromServerList(raw []rawServer) ([]domain.ServerInfo, error) {
	out := make([]domain.ServerInfo, 0, len(raw))
	for i, r := range raw {
		info, err := fromRawServer(r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		out = append(out, info)
	}
	return out, nil
}

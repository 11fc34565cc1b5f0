package handlers

import (
	"dayzlookup/domain"
)

// ServerInfoResponse is the JSON body of GET /{address}/{port}.
type ServerInfoResponse struct {
	Name    string              `json:"name"`
	Address string              `json:"address"`
	Port    int                 `json:"port"`
	Players PlayersResponse     `json:"players"`
	Env     EnvironmentResponse `json:"env"`
}

type PlayersResponse struct {
	Current int `json:"current"`
	Queue   int `json:"queue"`
	Max     int `json:"max"`
}

type EnvironmentResponse struct {
	Map               string `json:"map"`
	Time              string `json:"time"`
	Acceleration      int    `json:"acceleration"`
	NightAcceleration int    `json:"nightAcceleration"`
}

// toServerInfoResponse converts a domain server to API response.
func toServerInfoResponse(info domain.ServerInfo) ServerInfoResponse {
	return ServerInfoResponse{
		Name:    info.Name,
		Address: info.Address,
		Port:    info.Port,
		Players: PlayersResponse{
			Current: info.Players.Current,
			Queue:   info.Players.Queue,
			Max:     info.Players.Max,
		},
		Env: EnvironmentResponse{
			Map:               info.Environment.Map,
			Time:              info.Environment.Time,
			Acceleration:      info.Environment.DayAcceleration,
			NightAcceleration: info.Environment.NightAcceleration,
		},
	}
}

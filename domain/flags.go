package domain

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	queueFlagPrefix             = "lqs"
	dayAccelerationFlagPrefix   = "etm"
	nightAccelerationFlagPrefix = "entm"
)

var timeFlagRegexp = regexp.MustCompile(`^\d+:\d+$`)

// FlagOverrides holds the values decoded from server tags. A nil field means the tags did not set it.
type FlagOverrides struct {
	Queue             *int
	Time              *string
	DayAcceleration   *int
	NightAcceleration *int
}

// DecodeFlags decodes the comma separated tags a DayZ server advertises in its gametype field.
//
// Recognized tokens: lqs<n> (login queue size), etm<n> (day acceleration), entm<n> (night acceleration)
// and <h>:<m> (in-game time). Unknown tokens are ignored and a later token of the same kind overwrites
// an earlier one. A token with a malformed number, or an acceleration of zero, sets nothing.
func DecodeFlags(tokens []string) FlagOverrides {
	var out FlagOverrides
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		switch {
		case strings.HasPrefix(token, queueFlagPrefix):
			if n, ok := flagNumber(token, queueFlagPrefix); ok {
				out.Queue = &n
			}
		case strings.HasPrefix(token, nightAccelerationFlagPrefix):
			if n, ok := flagNumber(token, nightAccelerationFlagPrefix); ok && n > 0 {
				out.NightAcceleration = &n
			}
		case strings.HasPrefix(token, dayAccelerationFlagPrefix):
			if n, ok := flagNumber(token, dayAccelerationFlagPrefix); ok && n > 0 {
				out.DayAcceleration = &n
			}
		case timeFlagRegexp.MatchString(token):
			t := token
			out.Time = &t
		}
	}
	return out
}

// Apply writes the decoded overrides into info, leaving fields without an override untouched.
func (f FlagOverrides) Apply(info *ServerInfo) {
	if f.Queue != nil {
		info.Players.Queue = *f.Queue
	}
	if f.Time != nil {
		info.Environment.Time = *f.Time
	}
	if f.DayAcceleration != nil {
		info.Environment.DayAcceleration = *f.DayAcceleration
	}
	if f.NightAcceleration != nil {
		info.Environment.NightAcceleration = *f.NightAcceleration
	}
}

// SplitFlags splits a raw gametype value into tokens.
func SplitFlags(gametype string) []string {
	if gametype == "" {
		return nil
	}
	return strings.Split(gametype, ",")
}

func flagNumber(token, prefix string) (int, bool) {
	digits := token[len(prefix):]
	if digits == "" {
		return 0, false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

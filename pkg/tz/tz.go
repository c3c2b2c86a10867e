package tz

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zones must resolve even on hosts without /usr/share/zoneinfo
)

// Default is the zone used when TIMEZONE is not configured.
const Default = "Europe/Paris"

// Load resolves an IANA zone name. An empty name resolves to Default.
func Load(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = Default
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}

// MustLoad is Load for zones that are part of the program's configuration:
// a zone that cannot load is a fatal configuration error.
func MustLoad(name string) *time.Location {
	loc, err := Load(name)
	if err != nil {
		panic(err.Error())
	}
	return loc
}

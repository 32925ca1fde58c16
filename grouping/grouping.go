// Package grouping buckets clocks that currently show the same time.
package grouping

import (
	"sort"
	"time"

	"github.com/philtim/zoneclock/clock"
	"github.com/philtim/zoneclock/handoff"
	"github.com/philtim/zoneclock/zones"
)

// Group is a set of clocks sharing one displayed time
type Group struct {
	Key         string
	MinuteOfDay int
	Clocks      []*clock.Clock
}

// Compute groups clocks by their display key at t. Members keep the order
// of clocks and groups are sorted by time of day.
//
// Zones whose offsets differ by less than a minute land in the same group
// whenever they round to the same displayed minute.
func Compute(clocks []*clock.Clock, t time.Time) ([]Group, error) {
	byKey := make(map[string]*Group)
	var keys []string

	for _, clk := range clocks {
		key := clk.DisplayKey(t)
		if g, ok := byKey[key]; ok {
			g.Clocks = append(g.Clocks, clk)
			continue
		}
		minute, err := clock.ParseDisplayKey(key)
		if err != nil {
			return nil, err
		}
		byKey[key] = &Group{Key: key, MinuteOfDay: minute, Clocks: []*clock.Clock{clk}}
		keys = append(keys, key)
	}

	groups := make([]Group, 0, len(keys))
	for _, key := range SortKeys(keys) {
		groups = append(groups, *byKey[key])
	}
	return groups, nil
}

// SortKeys orders display keys chronologically. Keys that cannot be parsed
// sort last in their original order.
func SortKeys(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	minute := func(k string) int {
		m, err := clock.ParseDisplayKey(k)
		if err != nil {
			return 24 * 60
		}
		return m
	}
	sort.SliceStable(out, func(i, j int) bool {
		return minute(out[i]) < minute(out[j])
	})
	return out
}

// ZoneID is the zone that represents the group in routes
func (g Group) ZoneID() string {
	if len(g.Clocks) == 0 {
		return ""
	}
	return g.Clocks[0].Entry.ZoneID
}

// Entries returns the member entries in order
func (g Group) Entries() []zones.Entry {
	out := make([]zones.Entry, 0, len(g.Clocks))
	for _, clk := range g.Clocks {
		out = append(out, clk.Entry)
	}
	return out
}

// Payload builds the hand-off payload for the dynamic fullscreen view
func (g Group) Payload() handoff.Payload {
	return handoff.Payload{
		ZoneID:    g.ZoneID(),
		Countries: g.Entries(),
	}
}

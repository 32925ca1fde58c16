package handoff

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/philtim/zoneclock/zones"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() Payload {
	return Payload{
		ZoneID: "America/Lima",
		Countries: []zones.Entry{
			{Country: "Peru", Code: "PE", ZoneID: "America/Lima"},
			{Country: "Colombia", Code: "CO", ZoneID: "America/Bogota"},
		},
	}
}

func TestPutTakeReadsOnce(t *testing.T) {
	c := New(time.Minute)
	id, err := c.Put(samplePayload())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, ok := c.Take(id)
	require.True(t, ok)
	assert.Equal(t, samplePayload(), got)

	_, ok = c.Take(id)
	assert.False(t, ok, "payload must be consumed by the first read")
}

func TestPutReturnsDistinctIDs(t *testing.T) {
	c := New(time.Minute)
	a, err := c.Put(samplePayload())
	require.NoError(t, err)
	b, err := c.Put(samplePayload())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestTakeMissingOrUnparsable(t *testing.T) {
	c := New(0)
	c.PutRaw("broken", []byte("{not json"))
	c.PutRaw("empty", []byte(`{"timezone":"","countries":[]}`))

	for _, id := range []string{"", "unknown", "broken", "empty"} {
		_, ok := c.Take(id)
		assert.False(t, ok, id)
	}
}

func TestPayloadWireFormat(t *testing.T) {
	c := New(time.Minute)
	c.PutRaw("raw", []byte(`{"timezone":"America/Cayenne","countries":[{"country":"French Guiana","code":"GF","timezone":"America/Cayenne"}]}`))

	p, ok := c.Take("raw")
	require.True(t, ok)
	assert.Equal(t, "America/Cayenne", p.ZoneID)
	assert.Equal(t, "GF", p.Countries[0].Code)
}

func TestResolvePrefersPayload(t *testing.T) {
	p := samplePayload()
	assert.Equal(t, p, Resolve("america_lima", p, true))
}

func TestResolveUsesMapping(t *testing.T) {
	got := Resolve("america_lima", Payload{}, false)
	assert.Equal(t, "America/Lima", got.ZoneID)
	require.Len(t, got.Countries, 3)
	assert.Equal(t, []string{"PE", "EC", "CO"}, []string{got.Countries[0].Code, got.Countries[1].Code, got.Countries[2].Code})
}

func TestResolveDerivesFromSegment(t *testing.T) {
	got := Resolve("europe_lisbon", Payload{}, false)
	assert.Equal(t, "Europe/Lisbon", got.ZoneID)
	require.Len(t, got.Countries, 1)
	assert.Equal(t, "Lisbon", got.Countries[0].Country)
	assert.Equal(t, "LI", got.Countries[0].Code)
}

func TestDerive(t *testing.T) {
	tests := []struct {
		segment string
		zone    string
		country string
		code    string
	}{
		{"america_new_york", "America/New_York", "New York", "NE"},
		{"asia_tokyo", "Asia/Tokyo", "Tokyo", "TO"},
		{"America_Argentina_Cordoba", "America/Argentina/Cordoba", "Cordoba", "CO"},
		{"america_port_of_spain", "America/Port_of_Spain", "Port of Spain", "PO"},
		{"africa_dar_es_salaam", "Africa/Dar_es_Salaam", "Dar es Salaam", "DA"},
		{"europe_isle_of_man", "Europe/Isle_of_Man", "Isle of Man", "IS"},
		{"america_port-au-prince", "America/Port-au-Prince", "Port-au-Prince", "PO"},
		{"mars_olympus_mons", "mars/olympus/mons", "mons", "MO"},
	}
	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			got := Derive(tt.segment)
			assert.Equal(t, tt.zone, got.ZoneID)
			require.Len(t, got.Countries, 1)
			assert.Equal(t, tt.country, got.Countries[0].Country)
			assert.Equal(t, tt.code, got.Countries[0].Code)
			assert.Equal(t, tt.zone, got.Countries[0].ZoneID)
		})
	}
}

func TestDeriveRoundTripsSegments(t *testing.T) {
	for _, zone := range []string{
		"America/Sao_Paulo",
		"America/Port_of_Spain",
		"America/Argentina/Rio_Gallegos",
		"America/La_Paz",
		"America/El_Salvador",
		"Europe/Isle_of_Man",
	} {
		assert.Equal(t, zone, Derive(zones.Segment(zone)).ZoneID, zone)
	}
}

func TestIndexZones(t *testing.T) {
	fsys := fstest.MapFS{
		"America/Port_of_Spain":       {},
		"Antarctica/DumontDUrville":   {},
		"posix/America/Port_of_Spain": {},
		"right/Europe/Lisbon":         {},
		"zone.tab":                    {},
		"UTC":                         {},
	}
	idx := indexZones(fsys)

	assert.Equal(t, zoneIndex{
		"america_port_of_spain":     "America/Port_of_Spain",
		"antarctica_dumontdurville": "Antarctica/DumontDUrville",
	}, idx)
}

func TestDeriveUsesZoneIndex(t *testing.T) {
	idx := zoneIndex{"antarctica_dumontdurville": "Antarctica/DumontDUrville"}

	got := derive("antarctica_dumontdurville", idx)
	assert.Equal(t, "Antarctica/DumontDUrville", got.ZoneID)
	assert.Equal(t, "DumontDUrville", got.Countries[0].Country)

	got = derive("america_sao_paulo", zoneIndex{})
	assert.Equal(t, "America/Sao_Paulo", got.ZoneID)
}

package zones

import "strings"

var (
	argentina    = Entry{Country: "Argentina", Code: "AR", ZoneID: "America/Argentina/Buenos_Aires"}
	bolivia      = Entry{Country: "Bolivia", Code: "BO", ZoneID: "America/La_Paz"}
	brazil       = Entry{Country: "Brazil", Code: "BR", ZoneID: "America/Sao_Paulo"}
	chile        = Entry{Country: "Chile", Code: "CL", ZoneID: "America/Santiago"}
	colombia     = Entry{Country: "Colombia", Code: "CO", ZoneID: "America/Bogota"}
	ecuador      = Entry{Country: "Ecuador", Code: "EC", ZoneID: "America/Guayaquil"}
	falklands    = Entry{Country: "Falkland Islands", Code: "FK", ZoneID: "Atlantic/Stanley"}
	frenchGuiana = Entry{Country: "French Guiana", Code: "GF", ZoneID: "America/Cayenne"}
	guyana       = Entry{Country: "Guyana", Code: "GY", ZoneID: "America/Guyana"}
	paraguay     = Entry{Country: "Paraguay", Code: "PY", ZoneID: "America/Asuncion"}
	peru         = Entry{Country: "Peru", Code: "PE", ZoneID: "America/Lima"}
	suriname     = Entry{Country: "Suriname", Code: "SR", ZoneID: "America/Paramaribo"}
	uruguay      = Entry{Country: "Uruguay", Code: "UY", ZoneID: "America/Montevideo"}
	venezuela    = Entry{Country: "Venezuela", Code: "VE", ZoneID: "America/Caracas"}
)

// mappings lists the countries shown for a known route segment. The first
// entry owns the segment.
var mappings = map[string][]Entry{
	"america_argentina_buenos_aires": {argentina, uruguay, brazil},
	"america_montevideo":             {uruguay, argentina, brazil},
	"america_sao_paulo":              {brazil, argentina, uruguay},
	"america_la_paz":                 {bolivia, paraguay},
	"america_santiago":               {chile},
	"america_asuncion":               {paraguay, bolivia},
	"america_lima":                   {peru, ecuador, colombia},
	"america_guayaquil":              {ecuador, peru, colombia},
	"america_bogota":                 {colombia, peru, ecuador},
	"america_caracas":                {venezuela},
	"atlantic_stanley":               {falklands, argentina},
	"america_guyana":                 {guyana},
	"america_cayenne":                {frenchGuiana, brazil},
	"america_paramaribo":             {suriname},
}

// Mapping returns the predefined countries for a route segment
func Mapping(segment string) ([]Entry, bool) {
	entries, ok := mappings[strings.ToLower(segment)]
	if !ok {
		return nil, false
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, true
}

// README: Location extraction vocabulary (cue words, fillers, stoplist).
package extract

// cueWords mark a location as the object of a travel phrase when any of them
// appears in the text before the entity. Checked as plain substrings of the
// lowercased prefix.
var cueWords = []string{"in", "at", "to", "near", "visit", "go", "travel", "trip"}

// fillerWords are stripped from a regex-matched candidate phrase before it is
// accepted as a location ("visit some places in New York" -> "new york").
var fillerWords = map[string]struct{}{
	"some":    {},
	"places":  {},
	"any":     {},
	"the":     {},
	"many":    {},
	"few":     {},
	"several": {},
}

// nonLocations are capitalized tokens that the last-resort scan must never
// mistake for a place.
var nonLocations = map[string]struct{}{
	"ok":     {},
	"yes":    {},
	"no":     {},
	"hi":     {},
	"hey":    {},
	"hello":  {},
	"thanks": {},
	"i":      {},
}

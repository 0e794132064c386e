package groups

// Entry is one (artist, title) pair, either from the curated table or
// extracted from an album being matched.
type Entry struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
}

// Group is one editorial section of the catalog page.
type Group struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Albums []Entry `json:"albums"`
}

// UngroupedID is the synthetic bucket for albums that match no group.
const UngroupedID = 0

// UngroupedName is the display name of the synthetic bucket.
const UngroupedName = "Ungrouped"

// Table is the curated group table in display order. It is never modified
// after package initialization.
var Table = []Group{
	{
		ID:   1,
		Name: "Group 1",
		Albums: []Entry{
			{"JERRY GONZALEZ", "YA YO ME CURÀ"},
			{"TEO MACERO", "TEO"},
			{"MILTON CARDONA", "BEMBE"},
			{"MILTON CARDONA", "CAMBUCHA (CARMEN)"},
		},
	},
	{
		ID:   2,
		Name: "Group 2",
		Albums: []Entry{
			{"KIP HANRAHAN", "DRAWN FROM MEMORY (GREATEST HITS, OR WHATEVER... KIP ON CAMPUS)"},
			{"KIP HANRAHAN", "BEAUTIFUL SCARS"},
			{"KIP HANRAHAN", "AT HOME IN ANGER, which could also be called IMPERFECT, Happily"},
		},
	},
	{
		ID:   3,
		Name: "Group 3",
		Albums: []Entry{
			{"KIP HANRAHAN", "coup de tete"},
			{"KIP HANRAHAN", "DESIRE DEVELOPS AN EDGE"},
			{"KIP HANRAHAN", "VERTICAL'S CURRENCY"},
		},
	},
	{
		ID:   4,
		Name: "Group 4",
		Albums: []Entry{
			{"KIP HANRAHAN", "A THOUSAND NIGHTS AND A NIGHT (1-RED NIGHTS)"},
			{"KIP HANRAHAN", "A THOUSAND NIGHTS AND A NIGHT (SHADOW NIGHTS -1)"},
			{"KIP HANRAHAN", "A THOUSAND NIGHTS AND A NIGHT (SHADOW NIGHTS 2)"},
		},
	},
	{
		ID:   5,
		Name: "Group 5",
		Albums: []Entry{
			{"KIP HANRAHAN", "A FEW SHORT NOTES FOR THE END RUN"},
			{"KIP HANRAHAN", "DAYS AND NIGHTS OF BLUE LUCK INVERTED"},
			{"KIP HANRAHAN", "TENDERNESS"},
			{"KIP HANRAHAN", "EXOTICA"},
			{"KIP HANRAHAN", "ALL ROADS ARE MADE OF THE FLESH"},
		},
	},
	{
		ID:   6,
		Name: "Group 6",
		Albums: []Entry{
			{"KIP HANRAHAN", "original music from the soundtrack to PINERO"},
		},
	},
	{
		ID:   7,
		Name: "Group 7",
		Albums: []Entry{
			{"ASTOR PIAZZOLLA", "TANGO: ZERO HOUR"},
			{"ASTOR PIAZZOLLA", "THE ROUGH DANCER AND THE CYCLICAL NIGHT (Tango Apasionado)"},
			{"ASTOR PIAZZOLLA", "LA CAMORRA: THE SOLITUDE OF PASSIONATE PROVOCATION"},
			{"SILVANA DELUIGI", "YO!"},
		},
	},
	{
		ID:   8,
		Name: "Group 8",
		Albums: []Entry{
			{"PAUL HAINES", "DARN IT!"},
			{"PIRI THOMAS", "EVERY CHILD IS BORN A POET"},
		},
	},
	{
		ID:   9,
		Name: "Group 9",
		Albums: []Entry{
			{"ALFREDO TRIFF", "21 BROKEN MELODIES AT ONCE"},
			{"DEEP RUMBA", "THIS NIGHT BECOMES A RUMBA"},
			{"DEEP RUMBA", "A CALM IN THE FIRE OF DANCES"},
			{"RUMBA PROFUNDA", "ALTA EN LA FIEBRE DE LA RUMBA"},
			{"HORACIO EL NEGRO HERNANDEZ AND ROBBY AMEEN", "ROBBY & NEGRO AT THE THIRD WORLD WAR"},
			{"CONJURE", "MUSIC FOR THE TEXTS OF ISHMAEL REED"},
			{"CONJURE", "CAB CALLOWAY STANDS IN FOR THE MOON"},
			{"CONJURE", "BAD MOUTH"},
		},
	},
	{
		ID:   10,
		Name: "Group 10",
		Albums: []Entry{
			{"DNA", "A TASTE OF DNA"},
			{"DNA", "I WAS BORN, BUT..."},
			{"AMERICAN CLAVE", "ANTHOLOGY"},
		},
	},
	{
		ID:   11,
		Name: "Group 11",
		Albums: []Entry{
			{"DZIGA VERTOV", "ENTHUSIASM!"},
		},
	},
}

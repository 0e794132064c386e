package groups

import (
	"reflect"
	"testing"
)

type album struct {
	id     int
	artist string
	title  string
}

func albumEntry(a album) Entry { return Entry{Artist: a.artist, Title: a.title} }

func TestNormalizeForMatch(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Tango:   Zero  Hour ", "TANGO ZERO HOUR"},
		{"I WAS BORN, BUT...", "I WAS BORN BUT"},
		{"Robby & Negro", "ROBBY  NEGRO"},
		{"under_score", "UNDER_SCORE"},
		{"Ya Yo Me Curà", "YA YO ME CUR"},
		{"", ""},
		{"Astor\u00a0Piazzolla", "ASTOR PIAZZOLLA"},
		{"Tango\u00a0Zero\vHour", "TANGO ZERO HOUR"},
		{"\u2003Exotica\u00a0", "EXOTICA"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeForMatch(tt.in); got != tt.want {
				t.Errorf("NormalizeForMatch(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name  string
		album Entry
		entry Entry
		want  bool
	}{
		{"exact after punctuation strip", Entry{"Astor Piazzolla", "Tango Zero Hour"}, Entry{"ASTOR PIAZZOLLA", "TANGO: ZERO HOUR"}, true},
		{"title partial", Entry{"Milton Cardona", "Bembe (Live)"}, Entry{"MILTON CARDONA", "BEMBE"}, true},
		{"artist partial title exact", Entry{"Kip Hanrahan & friends", "Exotica"}, Entry{"KIP HANRAHAN", "EXOTICA"}, true},
		{"table title contains album title", Entry{"DNA", "A Taste"}, Entry{"DNA", "A TASTE OF DNA"}, true},
		{"artist mismatch", Entry{"Teo Macero", "Bembe"}, Entry{"MILTON CARDONA", "BEMBE"}, false},
		{"title mismatch", Entry{"Milton Cardona", "Something Else"}, Entry{"MILTON CARDONA", "BEMBE"}, false},
		{"accented and plain spellings", Entry{"Jerry Gonzalez", "Ya Yo Me Cura"}, Entry{"JERRY GONZALEZ", "YA YO ME CURÀ"}, true},
		{"empty artist passes its half", Entry{"", "Teo"}, Entry{"TEO MACERO", "TEO"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.album, tt.entry); got != tt.want {
				t.Errorf("Matches(%+v, %+v) = %v, want %v", tt.album, tt.entry, got, tt.want)
			}
		})
	}
}

func TestAssignPiazzolla(t *testing.T) {
	items := []album{{1, "Astor Piazzolla", "Tango Zero Hour"}}
	idx := Index(Assign(items, albumEntry, Table))
	if got := idx[7]; len(got) != 1 || got[0].id != 1 {
		t.Fatalf("group 7 = %+v, want the Piazzolla album", got)
	}
	if _, ok := idx[UngroupedID]; ok {
		t.Fatal("ungrouped bucket should be absent when every album matched")
	}
}

func TestAssignBucketsInTableOrder(t *testing.T) {
	buckets := Assign(nil, albumEntry, Table)
	if len(buckets) != len(Table) {
		t.Fatalf("got %d buckets, want %d", len(buckets), len(Table))
	}
	for i, b := range buckets {
		if b.ID != Table[i].ID || b.Name != Table[i].Name {
			t.Errorf("bucket %d = %d %q, want %d %q", i, b.ID, b.Name, Table[i].ID, Table[i].Name)
		}
		if b.Items == nil || len(b.Items) != 0 {
			t.Errorf("bucket %d should be empty and non-nil", b.ID)
		}
	}
}

func TestAssignFirstGroupWins(t *testing.T) {
	table := []Group{
		{ID: 1, Name: "first", Albums: []Entry{{"KIP HANRAHAN", "NIGHTS"}}},
		{ID: 2, Name: "second", Albums: []Entry{{"KIP HANRAHAN", "A THOUSAND NIGHTS AND A NIGHT"}}},
	}
	items := []album{{1, "Kip Hanrahan", "A Thousand Nights and a Night"}}
	idx := Index(Assign(items, albumEntry, table))
	if len(idx[1]) != 1 || len(idx[2]) != 0 {
		t.Fatalf("want the album in group 1 only, got %+v", idx)
	}
}

func TestAssignPartition(t *testing.T) {
	items := []album{
		{1, "Kip Hanrahan", "Tenderness"},
		{2, "Someone Else", "Random Record"},
		{3, "Astor Piazzolla", "Tango: Zero Hour"},
		{4, "Dziga Vertov", "Enthusiasm"},
		{5, "Kip Hanrahan", "A Thousand Nights and a Night"},
		{6, "Unknown Band", "Unlisted"},
		{7, "", "Exotica"},
	}
	buckets := Assign(items, albumEntry, Table)

	seen := map[int]int{}
	for _, b := range buckets {
		for _, it := range b.Items {
			seen[it.id]++
		}
	}
	for _, it := range items {
		if seen[it.id] != 1 {
			t.Errorf("album %d appears %d times, want exactly once", it.id, seen[it.id])
		}
	}

	last := buckets[len(buckets)-1]
	if last.ID != UngroupedID || last.Name != UngroupedName {
		t.Fatalf("last bucket = %d %q, want ungrouped", last.ID, last.Name)
	}
	if got := []int{last.Items[0].id, last.Items[1].id}; !reflect.DeepEqual(got, []int{2, 6}) {
		t.Errorf("ungrouped = %v, want input order [2 6]", got)
	}

	idx := Index(buckets)
	for id, want := range map[int]int{5: 2, 7: 1, 11: 1, 4: 1} {
		if len(idx[id]) != want {
			t.Errorf("group %d has %d albums, want %d", id, len(idx[id]), want)
		}
	}
	if idx[5][0].id != 1 || idx[5][1].id != 7 {
		t.Errorf("group 5 order = %+v, want input order", idx[5])
	}
}

func TestAssignDeterministic(t *testing.T) {
	items := []album{
		{1, "Conjure", "Bad Mouth"},
		{2, "DNA", "I Was Born, But..."},
		{3, "Nobody", "Nothing"},
	}
	a := Assign(items, albumEntry, Table)
	b := Assign(items, albumEntry, Table)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Assign is not deterministic")
	}
}

func TestGroupOf(t *testing.T) {
	if got := GroupOf(Entry{"Piri Thomas", "Every Child Is Born a Poet"}, Table); got != 8 {
		t.Errorf("GroupOf = %d, want 8", got)
	}
	if got := GroupOf(Entry{"Astor\u00a0Piazzolla", "Tango\u00a0Zero Hour"}, Table); got != 7 {
		t.Errorf("GroupOf with no-break spaces = %d, want 7", got)
	}
	if got := GroupOf(Entry{"Nobody", "Nothing"}, Table); got != UngroupedID {
		t.Errorf("GroupOf = %d, want ungrouped", got)
	}
}

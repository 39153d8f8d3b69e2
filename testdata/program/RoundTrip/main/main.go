package main

import (
	"fmt"
	"strings"
)

//enumjson:generate
//enumjson:converter FoldConverter
type Fold int

type FoldConverter struct{}

const (
	//enumjson:display Name="say \"hi\""
	FoldQuote Fold = iota

	//enumjson:description `C:\dir`
	FoldPath

	FoldTab //enumjson:description "tab\there"

	//enumjson:display Name="Ünïcode ✓"
	FoldUnicode

	FoldPlain
	FoldAlias = FoldPlain
)

//enumjson:generate CaseSensitive CamelCase TrimPrefix
//enumjson:converter ExactConverter
type Exact string

type ExactConverter struct{}

const (
	ExactNorth Exact = "N"
	ExactSouth Exact = "S"

	//enumjson:display Name="East \\ \"E\""
	ExactEast Exact = "E"

	ExactWestNorth Exact = "W"
)

type converter[E comparable] interface {
	Encode(v E) (string, error)
	Decode(s string) (E, error)
	Labels() []string
	Marshal(v E) ([]byte, error)
	Unmarshal(data []byte, v *E) error
}

// roundTrip checks decode(encode(m)) == m for every member, through strings
// and through JSON. It also decodes the upper- and lower-cased strings and
// counts how many come back as the member.
func roundTrip[E comparable](name string, conv converter[E], members []E) {
	fmt.Printf("%s %q\n", name, conv.Labels())

	failures, folded := 0, 0
	for _, m := range members {
		s, err := conv.Encode(m)
		if err != nil {
			fmt.Println(err)
			failures++
			continue
		}
		if got, err := conv.Decode(s); err != nil || got != m {
			failures++
		}

		data, err := conv.Marshal(m)
		var got E
		if err != nil || conv.Unmarshal(data, &got) != nil || got != m {
			failures++
		}

		upper, errUpper := conv.Decode(strings.ToUpper(s))
		lower, errLower := conv.Decode(strings.ToLower(s))
		if errUpper == nil && upper == m && errLower == nil && lower == m {
			folded++
		}
	}
	fmt.Printf("%s members=%d failures=%d folded=%d\n", name, len(members), failures, folded)
}

func main() {
	roundTrip[Fold]("Fold", FoldConverter{}, []Fold{FoldQuote, FoldPath, FoldTab, FoldUnicode, FoldPlain, FoldAlias})
	roundTrip[Exact]("Exact", ExactConverter{}, []Exact{ExactNorth, ExactSouth, ExactEast, ExactWestNorth})
}

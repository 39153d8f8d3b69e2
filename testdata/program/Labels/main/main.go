package main

import "fmt"

//enumjson:generate
//enumjson:converter MarkConverter
type Mark int

type MarkConverter struct{}

const (
	//enumjson:display Name="say \"hi\""
	Quote Mark = iota

	//enumjson:description `C:\dir`
	Path

	Tab //enumjson:description "tab\there"
)

func main() {
	var c MarkConverter
	for _, m := range []Mark{Quote, Path, Tab} {
		data, err := c.Marshal(m)
		fmt.Println(string(data), err)
	}

	var m Mark
	err := c.Unmarshal([]byte(`"C:\\DIR"`), &m)
	fmt.Println(m == Path, err)
}

package main

import "fmt"

//enumjson:generate CamelCase CaseSensitive=true PropertyName="color"
//enumjson:converter colorConverter
type color string

type colorConverter struct{}

const (
	DeepRed    color = "r"
	LightGreen color = "g"

	//enumjson:description "BLUE"
	Blue color = "b"
)

func main() {
	var c colorConverter
	fmt.Println(c.labels())

	s, err := c.encode(LightGreen)
	fmt.Println(s, err)

	v, err := c.decode("deepRed")
	fmt.Println(v, err)

	_, err = c.decode("DeepRed")
	fmt.Println(err)

	_, err = c.decode("blue")
	fmt.Println(err != nil)

	_, err = c.encode("x")
	fmt.Println(err)
}

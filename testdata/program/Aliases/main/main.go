package main

import "fmt"

//enumjson:generate
//enumjson:converter WeekdayConverter
type Weekday int

type WeekdayConverter struct{}

const (
	Sunday Weekday = iota
	Monday

	FirstDay = Sunday
)

func main() {
	var c WeekdayConverter
	fmt.Println(c.Labels())

	s, err := c.Encode(FirstDay)
	fmt.Println(s, err)

	v, err := c.Decode("firstday")
	fmt.Println(v == Sunday, err)
}

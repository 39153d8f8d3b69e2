package main

import (
	"encoding/json"
	"fmt"
)

// Members are named like the locals of generated methods.
//
//enumjson:generate CaseSensitive TextMarshaler
//enumjson:converter langConverter
type lang int

type langConverter struct{}

const (
	c lang = iota
	v
	s
	d
	err
	data
	text
	zero
)

func main() {
	var conv langConverter
	fmt.Println(conv.labels())

	for _, m := range []lang{c, v, s, d, err, data, text, zero} {
		str, encErr := conv.encode(m)
		got, decErr := conv.decode(str)
		fmt.Println(str, got == m, encErr, decErr)
	}

	_, encErr := conv.encode(lang(42))
	fmt.Println(encErr)

	var got lang
	decErr := conv.unmarshal([]byte(`"V"`), &got)
	fmt.Println(decErr)

	out, jsonErr := json.Marshal(map[string]lang{"k": s})
	fmt.Println(string(out), jsonErr)

	jsonErr = json.Unmarshal([]byte(`"zero"`), &got)
	fmt.Println(got == zero, jsonErr)
}

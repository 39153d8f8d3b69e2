package main

import (
	"fmt"

	"example.com/ConverterPackage/conv"
	"example.com/ConverterPackage/model"
)

func main() {
	var c conv.StatusConverter
	fmt.Println(c.Labels())

	_, err := c.Decode("statusHidden")
	fmt.Println(err)

	s, err := c.Encode(model.StatusGone)
	fmt.Println(s, err)

	v, err := c.Decode("STATUSACTIVE")
	fmt.Println(v == model.StatusActive, err)
}

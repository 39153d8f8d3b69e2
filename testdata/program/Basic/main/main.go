package main

import (
	"errors"
	"fmt"

	"github.com/sublee/enumjson/pkg/enumjsonerrors"
)

//enumjson:generate
//enumjson:converter StatusConverter
type Status int

type StatusConverter struct{}

const (
	StatusFirst Status = iota + 1

	//enumjson:display Name="Second"
	StatusSecond
)

// Skipped without a converter.
//
//enumjson:generate
type Orphan int

func main() {
	var c StatusConverter
	fmt.Println(c.Labels())

	s, err := c.Encode(StatusSecond)
	fmt.Println(s, err)

	v, err := c.Decode("statusfirst")
	fmt.Println(v == StatusFirst, err)

	_, err = c.Decode("third")
	fmt.Println(err)
	fmt.Println(errors.Is(err, enumjsonerrors.ErrNoMatch))

	_, err = c.Encode(Status(42))
	fmt.Println(err)

	data, err := c.Marshal(StatusFirst)
	fmt.Println(string(data), err)

	var out Status
	err = c.Unmarshal([]byte(`"SECOND"`), &out)
	fmt.Println(out == StatusSecond, err)
}

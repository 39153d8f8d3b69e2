package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sublee/enumjson/pkg/enumjsonerrors"
)

//enumjson:generate TextMarshaler=true
//enumjson:converter LevelConverter
type Level int

type LevelConverter struct{}

const (
	LevelLow Level = iota
	LevelHigh
)

type Config struct {
	Level  Level         `json:"level"`
	Limits map[Level]int `json:"limits,omitempty"`
}

func main() {
	data, err := json.Marshal(Config{Level: LevelHigh, Limits: map[Level]int{LevelLow: 1}})
	fmt.Println(string(data), err)

	var cfg Config
	err = json.Unmarshal([]byte(`{"level":"levellow"}`), &cfg)
	fmt.Println(cfg.Level == LevelLow, err)

	err = json.Unmarshal([]byte(`{"level":"medium"}`), &cfg)
	fmt.Println(errors.Is(err, enumjsonerrors.ErrNoMatch))
	fmt.Println(err)
}

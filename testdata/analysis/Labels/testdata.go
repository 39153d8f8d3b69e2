package testdata

//enumjson:generate
//enumjson:converter LevelConverter
type Level int

type LevelConverter struct{}

const (
	//enumjson:display Title="Low"
	Low Level = iota // want `malformed //enumjson:display directive on Low is ignored`

	//enumjson:description "Medium" "Level"
	Medium // want `malformed //enumjson:description directive on Medium is ignored`

	//enumjson:display Name="High"
	High

	//enumjson:description "broken
	//enumjson:description "Max"
	Max // want `malformed //enumjson:description directive on Max is ignored`
)

package main

//enumjson:generate
//enumjson:converter Conv
type A int

//enumjson:generate
//enumjson:converter Conv
type B int

type Conv struct{}

const A1 A = 0

const B1 B = 0

func main() {}

package testdata

//enumjson:generate
type NoConverter int // want `NoConverter has no //enumjson:converter directive`

//enumjson:generate
//enumjson:converter Missing
type UnknownConverter int // want `cannot resolve converter type "Missing"`

//enumjson:generate
//enumjson:converter Iface
type InterfaceConverter int // want `converter Iface cannot have methods`

type Iface interface{}

//enumjson:generate
//enumjson:converter Conv
type Point struct{ X, Y int } // want `Point is not an enum type`

//enumjson:generate
//enumjson:converter Conv
type Ratio float64 // want `Ratio is not an enum type; underlying type must be integer or string`

//enumjson:generate Status Level
//enumjson:converter Conv
type TwoTargets int // want `takes at most one type argument; got 2`

type Conv struct{}

// Converters in other packages are not checked.
//
//enumjson:generate
//enumjson:converter example.com/elsewhere.Conv
type Elsewhere int

// Only the converter directive.
//
//enumjson:converter Conv
type NoGenerate int

package testdata

//enumjson:generate CaseSensitive=maybe Colour=red PropertyName=""
//enumjson:converter ColorConverter
type Color int // want `invalid CaseSensitive value maybe; using default` `unknown option Colour` `invalid PropertyName value ""; using default`

type ColorConverter struct{}

const (
	Red Color = iota
	Green
)

//enumjson:generate casesensitive CAMELCASE=1 PropertyName="size"
//enumjson:converter SizeConverter
type Size string

type SizeConverter struct{}

const (
	Small Size = "s"
	Large Size = "l"
)

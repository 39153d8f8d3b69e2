package model

// Status of an account. Its converter lives in the conv package which this
// package does not import.
//
//enumjson:generate TextMarshaler=true
//enumjson:converter example.com/ConverterPackage/conv.StatusConverter
type Status int

const (
	StatusActive Status = iota
	statusHidden

	//enumjson:display Name="gone"
	StatusGone
)

var _ = statusHidden

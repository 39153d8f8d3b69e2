package conv

type StatusConverter struct{}

package main

// Exit codes follow the grep convention: "no matches" is distinct from
// usage and input errors.
const (
	ExitSuccess    = 0
	ExitNoMatch    = 1
	ExitInputError = 2
)

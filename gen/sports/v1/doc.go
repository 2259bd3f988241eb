// Package v1 holds the typed bindings of the SportsAPING interface.
//
// The *.gen.go files are generated from idl/SportsAPING.xml; regenerate with go generate.
package v1

//go:generate go run github.com/floegence/bfapi/cmd/bfapi generate --in ../../../idl/SportsAPING.xml --out . --overwrite

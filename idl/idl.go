// Package idl embeds the pre-patched interface documents the committed bindings are generated from.
package idl

import _ "embed"

// SportsAPING is the Sports API-NG interface document.
//
//go:embed SportsAPING.xml
var SportsAPING []byte

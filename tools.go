//go:build tools

// Package tools pins the gogio packaging tool used to build the mobile and
// web versions of giocalc:
//
//	go run gioui.org/cmd/gogio -target android ./giocalc
package tools

import _ "gioui.org/cmd/gogio"

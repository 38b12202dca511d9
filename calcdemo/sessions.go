package main

import "strings"

// session is one demo calculation, typed as a script.
type session struct {
	script     string
	clearAfter bool // press AC after the result, needed after errors
}

func (s session) label() string {
	return strings.Join(strings.Fields(s.script), "")
}

var demoSessions = []session{
	{script: "1 + 3 ="},
	{script: "1 + 3 = ="}, // repeating equals repeats the last operation
	{script: "1 - 3 ="},
	{script: "2 * 4 ="},
	{script: "3 / 4 ="},
	{script: "3 inv"},
	{script: "9 sqrt"},
	{script: "6 + 10 % ="},
	{script: "4 pow 3 ="},
	{script: "45 sin"},
	{script: "30 cos"},
	{script: "45 tan"},
	{script: "20 log"},
	{script: "20 ln"},
	{script: "50 neg"},
	{script: "5.2 + 30 sin - 81 sqrt ="},

	{script: "6 / 0 =", clearAfter: true},
	{script: "90 tan", clearAfter: true},
	{script: "0 ln", clearAfter: true},
	{script: "1 neg sqrt", clearAfter: true},
	{script: "1 + 99999999999999 =", clearAfter: true},
}

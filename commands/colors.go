package commands

import "github.com/mgutz/ansi"

var red = ansi.ColorFunc("red+b")
var yellow = ansi.ColorFunc("yellow+b")

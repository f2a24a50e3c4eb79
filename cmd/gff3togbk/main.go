// cmd/gff3togbk/main.go
package main

import (
	"ganflu/internal/appshell"
	"ganflu/internal/convertapp"
)

func main() { appshell.Main(convertapp.RunContext) }

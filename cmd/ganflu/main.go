// cmd/ganflu/main.go
package main

import (
	"ganflu/internal/app"
	"ganflu/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }

// cmd/dbgraph/main.go
package main

import (
	"dbgraph/internal/app"
	"dbgraph/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }

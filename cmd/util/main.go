package main

import (
	"github.com/onflow/flow-witness/cmd/util/cmd"
)

func main() {
	cmd.Execute()
}

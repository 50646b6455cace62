package main

import (
	"github.com/zcl-maker/snrblast/cmd"
)

func main() {
	cmd.Execute()
}

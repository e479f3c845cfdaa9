package main

import "github.com/gbenitezpy/consolidador/cmd"

func main() {
	cmd.Execute()
}

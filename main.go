package main

import "github.com/frahmantamala/shopfront/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/wilterwhite/ingeo-structures-sub000/cmd"

func main() {
	cmd.Execute()
}

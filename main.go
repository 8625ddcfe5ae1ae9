package main

import "wardrobe-manager/cmd"

func main() {
	cmd.Execute()
}

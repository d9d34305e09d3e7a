package main

import "cinema-catalog/cmd"

func main() {
	cmd.Execute()
}

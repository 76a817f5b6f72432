package main

import "stock-counter/cmd"

func main() {
	cmd.Execute()
}

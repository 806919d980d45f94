package main

import "os"

func main() {
	if len(os.Args) > 5 {
		os.Exit(1) // want "прямой вызов os.Exit в функции main"
	}
	exit()
}

func exit() {
	os.Exit(2)
}

package main

import (
	"fmt"
	"os"
)

func exit() {
	os.Exit(2)
}

func main() {
	defer fmt.Println("deferred")
	if len(os.Args) > 3 {
		exit()
	}
	go func() {
		os.Exit(1)
	}()
	os.Exit(0) // want "direct os.Exit call in main function"
}

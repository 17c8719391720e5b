// Command rawcoll-demo builds a list, mutates it and prints the values its
// consuming iterator yields.
package main

import (
	"log"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rawcoll-demo: ")
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"log"

	"github.com/Leapsight/ksuid"
)

func main() {
	id, err := ksuid.New()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("id:", id.String())
	fmt.Println("id len:", len(id.String()))

	at, err := ksuid.LocalTime(id.String())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("generated at:", at)
}

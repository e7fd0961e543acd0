// levelget downloads a level pack into the local assets directory using any
// go-getter source URL (git, http archive, local path).
package main

import (
	"flag"
	"log"

	"smashout/internal/level"
)

func main() {
	src := flag.String("src", "", "level pack source URL (go-getter syntax)")
	out := flag.String("out", "assets/levels", "destination directory")
	flag.Parse()

	if *src == "" {
		log.Fatal("levelget: -src is required")
	}

	log.Printf("fetching %s -> %s", *src, *out)
	if err := level.Fetch(*out, *src); err != nil {
		log.Fatalf("levelget: %v", err)
	}
	log.Println("done")
}

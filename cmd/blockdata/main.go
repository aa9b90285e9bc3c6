package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	get "github.com/hashicorp/go-getter"
)

func main() {
	var (
		base = flag.String("base", "https://github.com/voxelworks/voxel-data.git", "base url")
		set  = flag.String("set", "classic", "block set to fetch")
		out  = flag.String("o", "./blockdata", "output dir path")
	)
	flag.Parse()

	if *out == "" {
		panic("output dir path required")
	}

	if *set == "" {
		panic("block set required")
	}

	path := fmt.Sprintf("%s/%s", *out, *set)

	if err := os.RemoveAll(path); err != nil {
		panic(err)
	}

	log.Default().Printf("start downloading block definitions %s", path)

	url := fmt.Sprintf("git::%s//data/%s", *base, *set)

	if err := get.Get(path, url); err != nil {
		panic(err)
	}

	log.Default().Printf("done downloading block definitions %s", path)
}

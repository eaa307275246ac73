package main

import "github.com/rekal-dev/pngchunk/cmd/pngchunk/cli"

func main() {
	cli.Run()
}

package main

import "github.com/llehouerou/scrubber/internal/cli"

func main() {
	cli.Execute()
}

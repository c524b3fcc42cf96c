package main

import "github.com/surge-downloader/dlhist/cmd"

func main() {
	cmd.Execute()
}

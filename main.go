package main

import "github.com/KaramelBytes/txmedia-cli/cmd"

func main() {
	cmd.Execute()
}

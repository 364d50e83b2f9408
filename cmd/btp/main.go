package main

import "github.com/AhmetHKarabulut/btp-app/cmd/btp/cmd"

func main() {
	cmd.Execute()
}

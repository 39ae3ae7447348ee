package main

import "github.com/BrandonKowalski/togglebutton/cmd/toggledemo/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/saadjs/habit-hub/cmd/hub"

func main() {
	hub.Execute()
}

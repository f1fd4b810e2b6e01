package main

import "wakeup-punch-system/cmd/server"

func main() {
	server.Init()
	server.Run()
}

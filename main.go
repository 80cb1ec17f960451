package main

import "github.com/thereayou/courier-lite/cmd/server"

func main() {
	server.NewServer().Run()
}

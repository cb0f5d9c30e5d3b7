package main

import (
	api "Recipegram"
)

func main() {
	api.Run()
}

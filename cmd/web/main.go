package main

import "photostudio_backend/internal/app"

func main() {
	app.Run()
}

package main

import "dastawez_backend/internal/app"

func main() {
	app.Run()
}

package main

import (
	_ "github.com/framegeist/framegeist/docs"
	"github.com/framegeist/framegeist/internal/bootstrap"
)

// @title Framegeist API
// @version 1.0.0
// @description ASCII Video Animation Converter

// @host localhost:8000
// @BasePath /

func main() {
	bootstrap.Run()
}

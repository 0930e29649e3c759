package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/marcosmenezes/portfolio/cmd"
)

func main() {
	cmd.Execute()
}

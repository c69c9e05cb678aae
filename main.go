package main

import (
	"log"
	"os"

	"github.com/dramfinder/backend/cmd"
)

func main() {
	cmd.Execute()
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

package main

import (
	"fmt"
	"os"

	"areyouok/app"
	"areyouok/hal"
)

func main() {
	a := app.New(app.Config{
		Out:  hal.NewLogger(os.Stdout),
		Diag: hal.NewLogger(os.Stderr),
	})
	if err := hal.RunWindow(a); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

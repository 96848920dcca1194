package main

import "github.com/newtype0092/uploadcare-go/cmd/ucup/cmd"

func main() {
	cmd.Execute()
}

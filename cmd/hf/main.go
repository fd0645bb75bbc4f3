package main

import "habitflow/cmd/hf/root"

func main() {
	root.Execute()
}

package main

import "foodcart/foodcart-svc/cmd"

func main() {
	cmd.Execute()
}

// Command unshredder reconstructs images whose vertical strips were
// shuffled into a random horizontal order.
package main

import "unshredder/cmd"

func main() {
	cmd.Execute()
}

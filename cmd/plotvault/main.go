// Command plotvault inspects and extracts versioned plots stored in a
// plotvault container.
package main

func main() {
	Execute()
}

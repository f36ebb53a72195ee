// Command rntbdcat is a debug aid for the RNTBD header codec: it drives
// the Projector and HeaderStream directly from the command line so the
// wire format can be inspected without a live replica connection.
package main

func main() {
	execute()
}

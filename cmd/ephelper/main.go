// Command ephelper generates Eurorack faceplate and PCB outlines with their
// mounting holes.
package main

import "github.com/soypat/eurorack/internal/cli"

func main() {
	cli.Execute()
}

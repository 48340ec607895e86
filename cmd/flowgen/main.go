// Command flowgen is the bare tool binary. It serves version and help; a
// binary that actually generates manifests must link the definition packages
// in, see the examples directory and the package documentation.
package main

import "github.com/mvp-joe/flowgen"

func main() {
	flowgen.Main()
}

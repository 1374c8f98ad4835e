// Command procsim runs chemical process simulations.
package main

func main() {
	execute()
}

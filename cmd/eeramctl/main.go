package main

import (
	// Bus drivers register themselves on import.
	_ "eeram47/i2c/mock"
	_ "eeram47/i2c/sc18im"
)

func main() {
	Execute()
}

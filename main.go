/*
Copyright © 2026 Paulo Suderio
*/
package main

import "github.com/suderio/ascension/cmd"

func main() {
	cmd.Execute()
}

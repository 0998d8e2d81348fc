/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package main

import "ndvi-tools/cmd"

func main() {
	cmd.Execute()
}

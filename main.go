/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "TianjiMeta/cmd"

func main() {
	cmd.Execute()
}

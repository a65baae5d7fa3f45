/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "clmm-gateway/cmd"

func main() {
	cmd.Execute()
}

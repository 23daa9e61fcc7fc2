/*
Package main is the entry point for the hotelfinder CLI.

Usage:

	hotelfinder [command]

Available Commands:

	rooms        Filter and sort the room catalog
	reviews      Search guest experiences (reviews add: submit one)
	session      Interactive filtering session over stdin
	catalog seed Copy the built-in catalog into PostgreSQL
*/
package main

import (
	"fmt"
	"os"

	"hotel-booking/cli"
)

// Version information (set via ldflags during build)
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

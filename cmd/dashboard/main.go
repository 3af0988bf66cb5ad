// Package main provides the dashboard CLI.
package main

import "github.com/olirobz31/dashboard-analytics-pro/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/cli"

func main() {
	cli.Execute()
}

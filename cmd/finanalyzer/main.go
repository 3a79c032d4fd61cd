package main

import (
	"fmt"
	"os"

	"jsethi/finanalyzer/cmd/categorize"
	"jsethi/finanalyzer/cmd/reconcile"
	"jsethi/finanalyzer/cmd/root"
	"jsethi/finanalyzer/cmd/summarize"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(summarize.Cmd)
	root.Cmd.AddCommand(reconcile.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

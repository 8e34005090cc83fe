package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "contrarian",
		Short: "Deterministic debate partner that argues the opposite position",
		Long:  "Contrarian locks onto the topic, language and stance of the first message it sees, then argues the contrary position for the rest of the conversation. Identical inputs always produce identical replies.",
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newChatCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

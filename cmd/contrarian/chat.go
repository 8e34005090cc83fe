package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lorenzotomasdiez/contrarian/internal/conversation"
	"github.com/lorenzotomasdiez/contrarian/internal/output"
	"github.com/lorenzotomasdiez/contrarian/internal/store"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Debate interactively in the terminal",
		Long:  "Starts a local in-memory session. The first message locks the language, topic and stance; type /quit to exit.",
		RunE:  runChat,
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	st, err := store.New(store.TypeMemory)
	if err != nil {
		return err
	}
	defer st.Close()

	manager := conversation.NewManager(st, zerolog.Nop())

	fmt.Println("contrarian ready. Say something you believe.")
	scanner := bufio.NewScanner(os.Stdin)
	conversationID := ""
	turn := 0

	for {
		output.PrintPrompt(os.Stdout)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "/quit" || line == "/exit" {
			break
		}

		id, transcript, err := manager.HandleTurn(ctx, conversationID, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			if ctx.Err() != nil {
				break
			}
			continue
		}

		if conversationID == "" {
			conversationID = id
			if state, err := st.Get(ctx, id); err == nil && state != nil {
				output.PrintLock(os.Stdout, state.Lock)
			}
		}

		turn++
		if n := len(transcript); n > 0 {
			output.PrintReply(os.Stdout, turn, transcript[n-1].Message)
		}
	}
	return scanner.Err()
}

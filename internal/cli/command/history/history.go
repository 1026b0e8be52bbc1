package history

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/config"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/i18n"
	"github.com/prabhakar1234pr/github-commit-summarizer/internal/infrastructure/history"
	"github.com/urfave/cli/v3"
)

type Command struct{}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: t.GetMessage("history_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "full",
				Usage: "Print the stored post texts, not just the summary lines",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			store := history.NewStore(cfg.HistoryPath)
			examples, err := store.Load()
			if err != nil {
				return err
			}

			if len(examples) == 0 {
				fmt.Println(t.GetMessage("history_empty", 0, nil))
				return nil
			}

			cyan := color.New(color.FgCyan)
			for i, example := range examples {
				fmt.Println(t.GetMessage("history_entry", 0, map[string]interface{}{
					"Index":     i + 1,
					"Timestamp": example.Timestamp.Format(time.RFC3339),
					"Words":     example.Metrics.WordCount,
				}))
				if cmd.Bool("full") {
					_, _ = cyan.Println(example.GeneratedPost)
					fmt.Println()
				}
			}
			return nil
		},
	}
}

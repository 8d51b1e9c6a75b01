package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"llm-qa/internal/app"
	"llm-qa/internal/console"
	"llm-qa/internal/llm"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		question    string
		model       string
		temperature float64
		debugMode   bool
	)

	command := &cobra.Command{
		Use:           "qa",
		Short:         "Ask natural-language questions and receive LLM-generated answers.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := llm.Overrides{Model: model}
			if cmd.Flags().Changed("temperature") {
				overrides.Temperature = &temperature
			}
			logLevel := "warn"
			if debugMode {
				logLevel = "debug"
			}

			deps, err := app.Build(app.Options{
				Overrides: overrides,
				LogLevel:  logLevel,
				LogOutput: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			defer func() {
				_ = deps.Close()
			}()

			session := console.NewSession(deps.QA, cmd.InOrStdin(), cmd.OutOrStdout())
			if question != "" {
				return session.Ask(cmd.Context(), question)
			}
			return session.Run(cmd.Context())
		},
	}

	flags := command.Flags()
	flags.StringVarP(&question, "question", "q", "", "Submit a single question (otherwise an interactive session starts)")
	flags.StringVar(&model, "model", "", "Override the LLM model (falls back to env LLM_MODEL)")
	flags.Float64Var(&temperature, "temperature", llm.DefaultTemperature, "Override generation temperature (falls back to env LLM_TEMPERATURE)")
	flags.BoolVar(&debugMode, "debug", false, "Enable debug logging on stderr")

	return command
}

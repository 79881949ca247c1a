// Package main implements the ankigen CLI: one-shot deck generation and
// CSV export from the command line, the same pipeline the server exposes
// over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/phrazzld/ankigen/internal/config"
	"github.com/phrazzld/ankigen/internal/domain"
	"github.com/phrazzld/ankigen/internal/export"
	"github.com/phrazzld/ankigen/internal/platform/gemini"
	"github.com/phrazzld/ankigen/internal/service"
)

// cli defines the command-line surface.
type cli struct {
	Subject     string `arg:""                  help:"Subject to generate flashcards for, e.g. 'Basic SQL Concepts'."`
	Topics      int    `default:"2"             help:"Number of topics to generate."`
	Cards       int    `default:"3"             help:"Number of cards per topic."`
	Preferences string `default:""              help:"Free-text preferences, e.g. \"assume I'm a beginner\"."`
	APIKey      string `env:"GEMINI_API_KEY"    help:"Gemini API key." name:"api-key"`
	Model       string `default:"gemini-2.0-flash" help:"Gemini model name."`
	Timeout     int    `default:"60"            help:"Generation timeout in seconds."`
	Out         string `default:"anki_deck.csv" help:"Destination CSV file." type:"path"`
	Verbose     bool   `short:"v"               help:"Enable debug logging."`
}

func main() {
	var args cli
	kctx := kong.Parse(&args,
		kong.Name("ankigen"),
		kong.Description("Generate an Anki-importable flashcard CSV from a subject using an LLM."),
		kong.UsageOnError(),
	)

	kctx.FatalIfErrorf(run(args))
}

func run(args cli) error {
	level := slog.LevelWarn
	if args.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	generator, err := gemini.NewGeminiGenerator(logger, config.LLMConfig{
		ModelName:      args.Model,
		TimeoutSeconds: args.Timeout,
	})
	if err != nil {
		return err
	}

	deckService, err := service.NewDeckService(generator, logger)
	if err != nil {
		return err
	}

	deck, err := deckService.GenerateDeck(context.Background(), domain.GenerationRequest{
		Subject:          args.Subject,
		TopicCount:       args.Topics,
		CardsPerTopic:    args.Cards,
		PreferencePrompt: args.Preferences,
		APIKey:           args.APIKey,
	})
	if err != nil {
		return err
	}

	if err := export.WriteFile(args.Out, deck.Cards); err != nil {
		return err
	}

	fmt.Printf("Wrote %d cards to %s\n", len(deck.Cards), args.Out)
	return nil
}

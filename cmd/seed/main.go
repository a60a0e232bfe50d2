package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"

	"bookstore/internal/book"
	"bookstore/internal/config"
	"bookstore/internal/logger"
	"bookstore/internal/platform/postgres"
)

var fixture = book.Book{
	ISBN: "123456789",
	Fields: book.Fields{
		AmazonURL: "https://amazon.com/GoT",
		Author:    "John Deere",
		Language:  "English",
		Pages:     300,
		Publisher: "Activision",
		Title:     "Game of Thrones",
		Year:      2008,
	},
}

func main() {
	count := flag.Int("count", 0, "number of generated books to insert besides the fixture")
	flag.Parse()

	log := logger.New(logger.Config{Format: logger.FormatConsole})

	if err := validateCount(*count); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	ctx := context.Background()
	pool, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	repo := book.NewPostgresRepo(pool, cfg.QueryTimeout)

	books := append([]book.Book{fixture}, generateBooks(*count, rand.New(rand.NewSource(1)))...)
	inserted, skipped := 0, 0
	for _, b := range books {
		if _, err := repo.Create(ctx, b); err != nil {
			if errors.Is(err, book.ErrConflict) {
				skipped++
				continue
			}
			log.Fatal().Err(err).Str("isbn", b.ISBN).Msg("failed to insert book")
		}
		inserted++
	}

	log.Info().Int("inserted", inserted).Int("skipped", skipped).Msg("seed complete")
}

func validateCount(n int) error {
	if n < 0 {
		return fmt.Errorf("-count must not be negative, got %d", n)
	}
	return nil
}

func generateBooks(n int, rng *rand.Rand) []book.Book {
	if n <= 0 {
		return nil
	}

	languages := []string{"English", "Spanish", "French", "German", "Italian"}
	publishers := []string{"Penguin", "HarperCollins", "Oxford", "Cambridge", "MIT Press"}
	authors := []string{"Ada Park", "Jon Ito", "Mira Suarez", "Tom Reed", "Lena Holm"}

	out := make([]book.Book, 0, n)
	for i := 0; i < n; i++ {
		isbn := fmt.Sprintf("978%010d", i+1)
		out = append(out, book.Book{
			ISBN: isbn,
			Fields: book.Fields{
				AmazonURL: "https://amazon.com/dp/" + isbn,
				Author:    authors[rng.Intn(len(authors))],
				Language:  languages[rng.Intn(len(languages))],
				Pages:     100 + rng.Intn(800),
				Publisher: publishers[rng.Intn(len(publishers))],
				Title:     fmt.Sprintf("Book Title %d - %s", i+1, randomWord(rng)),
				Year:      1950 + rng.Intn(75),
			},
		})
	}
	return out
}

func randomWord(rng *rand.Rand) string {
	words := []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
	return words[rng.Intn(len(words))]
}

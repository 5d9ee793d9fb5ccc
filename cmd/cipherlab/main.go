// Command cipherlab demonstrates the cipher and both attacks end to end:
// it encrypts a message, decrypts it back, then breaks the ciphertext with
// the known-plaintext and frequency attacks.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/mmsaleem/cipherlab/analysis"
	"github.com/mmsaleem/cipherlab/cipher"
)

func main() {
	var (
		plaintext = flag.String("plaintext",
			"the enemy will attack at dawn from the north ridge and the bridge must be held until the relief column arrives",
			"message to encrypt")
		subKey  = flag.String("subkey", "SECURITYKEY", "substitution key, letters only, length >= 10")
		colWord = flag.String("colword", "ZEBRA", "keyword defining the column order")
		maxCols = flag.Int("maxcols", 5, "column bound for the attacks, 1..8")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	msg := cipher.Normalize(*plaintext)
	kv := cipher.Normalize(*subKey)
	kc, err := cipher.RanksFromWord(cipher.Normalize(*colWord))
	if err != nil {
		logger.Error("bad column keyword", "err", err)
		os.Exit(1)
	}

	ct, err := cipher.Encrypt(msg, kv, kc)
	if err != nil {
		logger.Error("encrypt failed", "err", err)
		os.Exit(1)
	}
	pt, err := cipher.Decrypt(ct, kv, kc)
	if err != nil {
		logger.Error("decrypt failed", "err", err)
		os.Exit(1)
	}
	logger.Info("round trip", "columns", len(kc), "ciphertext", ct, "decrypted", pt)

	kpa, err := analysis.AttackKnownPlaintext(ct, msg, *maxCols)
	switch {
	case errors.Is(err, analysis.ErrKeyNotFound), errors.Is(err, analysis.ErrInsufficientSample):
		logger.Warn("known-plaintext attack found nothing", "err", err)
	case err != nil:
		logger.Error("known-plaintext attack failed", "err", err)
		os.Exit(1)
	default:
		logger.Info("known-plaintext attack", "key", kpa.Key, "columns", kpa.Columns, "order", kpa.Perm)
	}

	freq, err := analysis.AttackFrequency(ct, *maxCols, 10, 14)
	switch {
	case errors.Is(err, analysis.ErrInconclusive):
		logger.Warn("frequency attack inconclusive", "err", err)
	case err != nil:
		logger.Error("frequency attack failed", "err", err)
		os.Exit(1)
	default:
		logger.Info("frequency attack", "key", freq.Key, "columns", freq.Columns,
			"order", freq.Perm, "score", freq.Score, "confidence", freq.Confidence)
	}
}

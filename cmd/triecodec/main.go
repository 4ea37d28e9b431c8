// Command triecodec decodes, re-encodes, or blinds a single hex-
// encoded trie node from the command line, optionally hydrating a
// blinded result against a configured preimage store.
package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"triecodec/internal/config"
	"triecodec/internal/log"
	"triecodec/mpt/node"
	"triecodec/preimage"
	"triecodec/storage"
	"triecodec/storage/badger"
	"triecodec/storage/mem"
)

var (
	modeDecode = "decode"
	modeBlind  = "blind"
)

func main() {
	hexFlag := flag.String("hex", "", "hex-encoded trie node to process (with or without 0x prefix)")
	modeFlag := flag.String("mode", modeDecode, "operation to perform: decode or blind")
	configPath := flag.String("config", "", "path to config file (required with -hydrate)")
	hydrateFlag := flag.Bool("hydrate", false, "hydrate a top-level blinded result using the configured preimage store")

	if v := os.Getenv("NODE_HEX"); v != "" {
		flag.Set("hex", v)
	}
	if v := os.Getenv("NODE_MODE"); v != "" {
		flag.Set("mode", v)
	}
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		flag.Set("config", v)
	}
	if v := os.Getenv("HYDRATE"); v == "1" || v == "true" {
		flag.Set("hydrate", "true")
	}

	flag.Parse()

	logger := log.New(log.NewStdoutHandler()).With("component", "main")

	if *hexFlag == "" {
		logger.Error("missing required -hex argument")
		os.Exit(2)
	}

	raw, err := hex.DecodeString(strings.TrimPrefix(*hexFlag, "0x"))
	if err != nil {
		logger.Error("failed to parse -hex argument", "err", err)
		os.Exit(2)
	}

	n, err := node.Decode(raw)
	if err != nil {
		logger.Error("failed to decode node", "err", err)
		os.Exit(1)
	}

	switch *modeFlag {
	case modeBlind:
		n = node.Blind(n)
	case modeDecode:
		// n is already decoded; nothing further to do.
	default:
		logger.Error("unknown mode", "mode", *modeFlag)
		os.Exit(2)
	}

	if *hydrateFlag {
		if *configPath == "" {
			logger.Error("-hydrate requires -config")
			os.Exit(2)
		}

		cfg, err := config.NewLoader(logger).Load(*configPath)
		if err != nil {
			logger.Error("failed to load config", "err", err)
			os.Exit(1)
		}

		store, err := openStore(cfg)
		if err != nil {
			logger.Error("failed to open preimage store", "err", err)
			os.Exit(1)
		}
		defer store.Close()

		oracle := preimage.NewStoreOracle(store)
		hydrated, err := preimage.Hydrate(context.Background(), n, oracle)
		if err != nil {
			logger.Error("failed to hydrate node", "err", err)
			os.Exit(1)
		}
		n = hydrated
	}

	fmt.Printf("%#v\n", n)

	var buf bytes.Buffer
	node.Encode(n, &buf)
	logger.Info("encoded", "hex", fmt.Sprintf("0x%x", buf.Bytes()))
}

// openStore opens the preimage store described by cfg.
func openStore(cfg *config.AppConfig) (storage.KeyValStore, error) {
	switch cfg.StoreBackend {
	case config.StoreBadger:
		return badger.New(cfg.StorePath)
	default:
		return mem.New(), nil
	}
}

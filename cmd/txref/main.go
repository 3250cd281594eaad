// Package main contains the txref command line tool. Without arguments
// it encodes a txref from the flags; with arguments it classifies each
// input and decodes the ones that are txrefs.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/txref/pkg/safe"
	"github.com/goodnatureofminers/txref/pkg/txref"
)

type config struct {
	Height   int64  `long:"height" env:"TXREF_HEIGHT" description:"block height to encode" default:"0"`
	Position int64  `long:"position" env:"TXREF_POSITION" description:"transaction position within the block" default:"0"`
	TxoIndex int64  `long:"txo-index" env:"TXREF_TXO_INDEX" description:"output index within the transaction" default:"0"`
	Extended bool   `long:"extended" env:"TXREF_EXTENDED" description:"force the extended form even when txo index is 0"`
	Testnet  bool   `long:"testnet" env:"TXREF_TESTNET" description:"encode for testnet"`
	HRP      string `long:"hrp" env:"TXREF_HRP" description:"override the human-readable prefix"`
}

func main() {
	cfg := config{}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	args, err := flags.ParseArgs(&cfg, os.Args[1:])
	if err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(cfg, args, logger); err != nil {
		logger.Fatal("txref failed", zap.Error(err))
	}
}

func run(cfg config, args []string, logger *zap.Logger) error {
	if len(args) == 0 {
		return encode(cfg)
	}
	for _, arg := range args {
		inspect(arg, logger)
	}
	return nil
}

func encode(cfg config) error {
	height, err := safe.Uint32(cfg.Height)
	if err != nil {
		return fmt.Errorf("parse height: %w", err)
	}
	position, err := safe.Uint32(cfg.Position)
	if err != nil {
		return fmt.Errorf("parse position: %w", err)
	}
	txoIndex, err := safe.Uint32(cfg.TxoIndex)
	if err != nil {
		return fmt.Errorf("parse txo index: %w", err)
	}

	var ref string
	if cfg.Testnet {
		hrp := cfg.HRP
		if hrp == "" {
			hrp = txref.HRPTest
		}
		ref, err = txref.EncodeTestnet(height, position, txoIndex, cfg.Extended, hrp)
	} else {
		hrp := cfg.HRP
		if hrp == "" {
			hrp = txref.HRPMain
		}
		ref, err = txref.Encode(height, position, txoIndex, cfg.Extended, hrp)
	}
	if err != nil {
		return err
	}

	fmt.Println(ref)
	return nil
}

func inspect(input string, logger *zap.Logger) {
	switch txref.Classify(input) {
	case txref.InputTxref, txref.InputTxrefExt:
		decoded, err := txref.Decode(input)
		if err != nil {
			logger.Error("failed to decode txref", zap.String("input", input), zap.Error(err))
			return
		}
		fields := []zap.Field{
			zap.String("txref", decoded.Txref),
			zap.String("hrp", decoded.HRP),
			zap.Uint32("height", decoded.BlockHeight),
			zap.Uint32("position", decoded.TransactionPosition),
			zap.Uint32("txo_index", decoded.TxoIndex),
			zap.Stringer("encoding", decoded.Encoding),
		}
		if decoded.Commentary != "" {
			fields = append(fields, zap.String("commentary", decoded.Commentary))
		}
		logger.Info("decoded txref", fields...)
	case txref.InputTxid:
		hash, err := chainhash.NewHashFromStr(input)
		if err != nil {
			logger.Warn("input looks like a txid but is not valid hex", zap.String("input", input), zap.Error(err))
			return
		}
		logger.Info("transaction id", zap.Stringer("txid", hash))
	case txref.InputAddress:
		logger.Info("bitcoin address", zap.String("address", input))
	default:
		logger.Warn("unrecognized input", zap.String("input", input))
	}
}

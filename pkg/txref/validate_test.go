package txref

import (
	"errors"
	"testing"
)

func TestRangeChecks(t *testing.T) {
	tests := []struct {
		name    string
		check   func() error
		wantErr bool
	}{
		{name: "height zero", check: func() error { return checkBlockHeight(0) }},
		{name: "height max", check: func() error { return checkBlockHeight(MaxBlockHeight) }},
		{name: "height over", check: func() error { return checkBlockHeight(MaxBlockHeight + 1) }, wantErr: true},
		{name: "position zero", check: func() error { return checkTransactionPosition(0) }},
		{name: "position max", check: func() error { return checkTransactionPosition(MaxTransactionPosition) }},
		{name: "position over", check: func() error { return checkTransactionPosition(MaxTransactionPosition + 1) }, wantErr: true},
		{name: "txo index zero", check: func() error { return checkTxoIndex(0) }},
		{name: "txo index max", check: func() error { return checkTxoIndex(MaxTxoIndex) }},
		{name: "txo index over", check: func() error { return checkTxoIndex(MaxTxoIndex + 1) }, wantErr: true},
		{name: "magic zero", check: func() error { return checkMagicCode(0) }},
		{name: "magic max", check: func() error { return checkMagicCode(MaxMagicCode) }},
		{name: "magic over", check: func() error { return checkMagicCode(MaxMagicCode + 1) }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var rangeErr *RangeError
				if !errors.As(err, &rangeErr) {
					t.Errorf("error = %v, want *RangeError", err)
				}
			}
		})
	}
}

func TestCheckExtendedMagicCode(t *testing.T) {
	tests := []struct {
		name      string
		magicCode uint8
		wantErr   bool
	}{
		{name: "mainnet extended", magicCode: MagicMainExtended},
		{name: "testnet extended", magicCode: MagicTestExtended},
		{name: "mainnet standard", magicCode: MagicMain, wantErr: true},
		{name: "testnet standard", magicCode: MagicTest, wantErr: true},
		{name: "arbitrary", magicCode: 0x1F, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkExtendedMagicCode(tt.magicCode)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var magicErr *MagicCodeError
				if !errors.As(err, &magicErr) {
					t.Errorf("error = %v, want *MagicCodeError", err)
				}
			}
		})
	}
}

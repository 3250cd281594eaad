package txref

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  InputType
	}{
		{
			name:  "empty",
			input: "",
			want:  InputUnknown,
		},
		{
			name:  "64 char hex is a txid",
			input: "0f2c5a4f05ae478b7f323c9f8b5cd11c7f0e1d2a3b4c5d6e7f8091a2b3c4d5e6",
			want:  InputTxid,
		},
		{
			name:  "64 chars classified as txid by length alone",
			input: "zzzz5a4f05ae478b7f323c9f8b5cd11c7f0e1d2a3b4c5d6e7f8091a2b3c4d5e6",
			want:  InputTxid,
		},
		{
			name:  "legacy mainnet address",
			input: "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa",
			want:  InputAddress,
		},
		{
			name:  "p2sh address",
			input: "342ftSRCvFHfCeFFBuz4xwbeqnDw6BGUey",
			want:  InputAddress,
		},
		{
			name:  "testnet address",
			input: "mipcBbFg9gMiCh81Kj8tqqdgoZub1ZJRfn",
			want:  InputAddress,
		},
		{
			name:  "mainnet standard pretty",
			input: "tx1:rjk0-uqay-z9l7-m9m",
			want:  InputTxref,
		},
		{
			name:  "mainnet standard without prefix",
			input: "rjk0-uqay-z9l7-m9m",
			want:  InputTxref,
		},
		{
			name:  "testnet standard pretty",
			input: "txtest1:xjk0-uqay-zghl-p89",
			want:  InputTxref,
		},
		{
			name:  "testnet standard without prefix",
			input: "xjk0-uqay-zghl-p89",
			want:  InputTxref,
		},
		{
			name:  "mainnet extended pretty",
			input: "tx1:yjk0-uqay-zpqq-43kk-5r",
			want:  InputTxrefExt,
		},
		{
			name:  "testnet extended pretty",
			input: "txtest1:8jk0-uqay-zpqq-mfea-hy",
			want:  InputTxrefExt,
		},
		{
			name:  "testnet extended without prefix",
			input: "8jk0-uqay-zpqq-mfea-hy",
			want:  InputTxrefExt,
		},
		{
			// 18 characters could be a complete mainnet standard txref or
			// an extended one missing its prefix; starting with "tx1"
			// resolves it as standard
			name:  "ambiguous length with mainnet prefix",
			input: "tx1rqqqqqqqqwtvvjr",
			want:  InputTxref,
		},
		{
			name:  "ambiguous length without mainnet prefix",
			input: "yjk0uqayzpqq43kk5r",
			want:  InputTxrefExt,
		},
		{
			name:  "too short",
			input: "tx1:rqqq",
			want:  InputUnknown,
		},
		{
			name:  "random text",
			input: "not a txref and not an address at all at all",
			want:  InputUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInputType_String(t *testing.T) {
	tests := []struct {
		t    InputType
		want string
	}{
		{t: InputUnknown, want: "unknown"},
		{t: InputTxid, want: "txid"},
		{t: InputAddress, want: "address"},
		{t: InputTxref, want: "txref"},
		{t: InputTxrefExt, want: "txref-ext"},
		{t: InputType(200), want: "unknown"},
	}
	for _, tt := range tests {
		if got := tt.t.String(); got != tt.want {
			t.Errorf("InputType(%d).String() = %q, want %q", tt.t, got, tt.want)
		}
	}
}

func TestAddHRPIfNeeded(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "mainnet standard sentinel",
			input: "rjk0uqayz9l7m9m",
			want:  "tx1rjk0uqayz9l7m9m",
		},
		{
			name:  "mainnet extended sentinel",
			input: "yjk0uqayzpqq43kk5r",
			want:  "tx1yjk0uqayzpqq43kk5r",
		},
		{
			name:  "testnet standard sentinel",
			input: "xjk0uqayzghlp89",
			want:  "txtest1xjk0uqayzghlp89",
		},
		{
			name:  "testnet extended sentinel",
			input: "8jk0uqayzpqqmfeahy",
			want:  "txtest18jk0uqayzpqqmfeahy",
		},
		{
			name:  "complete txref left alone",
			input: "tx1rjk0uqayz9l7m9m",
			want:  "tx1rjk0uqayz9l7m9m",
		},
		{
			name:  "wrong length left alone",
			input: "rjk0uqay",
			want:  "rjk0uqay",
		},
		{
			name:  "right length wrong sentinel left alone",
			input: "qjk0uqayz9l7m9m",
			want:  "qjk0uqayz9l7m9m",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := addHRPIfNeeded(tt.input); got != tt.want {
				t.Errorf("addHRPIfNeeded() = %q, want %q", got, tt.want)
			}
		})
	}
}

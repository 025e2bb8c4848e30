// SPDX-License-Identifier: MIT
// Dev KryperAI

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"cosmos-txmsg/msgs"
	"cosmos-txmsg/tx"
	"cosmos-txmsg/types"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "txcli:", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("unknown command")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		usage(out)
		return nil
	}

	switch args[0] {
	case "new":
		return newWallet(args[1:], out)
	case "send":
		return send(args[1:], out)
	case "delegate":
		return delegate(args[1:], out)
	case "decode":
		return decode(args[1:], out)
	case "types":
		return listTypes(args[1:], out)
	default:
		usage(out)
		return fmt.Errorf("%w: %s", errUsage, args[0])
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "txcli usage:")
	fmt.Fprintln(out, "  txcli new [-prefix cosmos]")
	fmt.Fprintln(out, "  txcli send (-from ADDR | -key HEX) -to ADDR -amount 100uatom [-memo TEXT] [-timeout HEIGHT] [-prefix cosmos]")
	fmt.Fprintln(out, "  txcli delegate (-from ADDR | -key HEX) -validator VALOPER -amount 100uatom [-memo TEXT] [-prefix cosmos]")
	fmt.Fprintln(out, "  txcli decode -type TYPE_URL -value 0x.. [-wasm]")
	fmt.Fprintln(out, "  txcli types [-wasm]")
}

// ---------------- KEY GEN ----------------

func newWallet(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	prefix := fs.String("prefix", types.DefaultBech32Prefix, "bech32 prefix")
	if err := fs.Parse(args); err != nil {
		return err
	}

	w, err := types.NewWallet()
	if err != nil {
		return err
	}
	priv, err := types.PrivateKeyToHex(w.PrivateKey)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Private:", priv)
	fmt.Fprintln(out, "Address:", w.Address.String(*prefix))
	return nil
}

// ---------------- BUILD MESSAGES ----------------

func send(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("send", flag.ContinueOnError)
	from := fs.String("from", "", "sender address")
	key := fs.String("key", "", "hex private key, derives the sender address")
	to := fs.String("to", "", "receiver address")
	amount := fs.String("amount", "", "coins, e.g. 100uatom,5stake")
	memo := fs.String("memo", "", "body memo")
	timeout := fs.Uint64("timeout", 0, "body timeout height")
	prefix := fs.String("prefix", types.DefaultBech32Prefix, "account bech32 prefix")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sender, err := resolveSender(*from, *key, *prefix)
	if err != nil {
		return err
	}
	if err := checkAddress(*to, *prefix); err != nil {
		return err
	}
	coins, err := types.ParseCoins(*amount)
	if err != nil {
		return err
	}

	return printBody(out, *memo, *timeout, msgs.MsgSend{
		FromAddress: sender,
		ToAddress:   *to,
		Amount:      coins,
	})
}

func delegate(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("delegate", flag.ContinueOnError)
	from := fs.String("from", "", "delegator address")
	key := fs.String("key", "", "hex private key, derives the delegator address")
	validator := fs.String("validator", "", "validator operator address")
	amount := fs.String("amount", "", "coin, e.g. 100uatom")
	memo := fs.String("memo", "", "body memo")
	timeout := fs.Uint64("timeout", 0, "body timeout height")
	prefix := fs.String("prefix", types.DefaultBech32Prefix, "account bech32 prefix")
	if err := fs.Parse(args); err != nil {
		return err
	}

	delegator, err := resolveSender(*from, *key, *prefix)
	if err != nil {
		return err
	}
	if err := checkAddress(*validator, *prefix+"valoper"); err != nil {
		return err
	}
	coin, err := types.ParseCoin(*amount)
	if err != nil {
		return err
	}

	return printBody(out, *memo, *timeout, msgs.MsgDelegate{
		DelegatorAddress: delegator,
		ValidatorAddress: *validator,
		Amount:           coin,
	})
}

func printBody(out io.Writer, memo string, timeout uint64, m tx.MsgProto) error {
	body, err := tx.NewBody(memo, timeout, m)
	if err != nil {
		return err
	}
	data, err := body.Marshal()
	if err != nil {
		return err
	}
	msg := body.Messages[0]

	fmt.Fprintln(out, "Type:  ", msg.TypeURL())
	fmt.Fprintln(out, "Value: ", hexutil.Encode(msg.Value()))
	fmt.Fprintln(out, "Body:  ", hexutil.Encode(data))
	fmt.Fprintln(out, "Hash:  ", types.Sha256(data).String())
	return nil
}

// ---------------- DECODE ----------------

func decode(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	typeURL := fs.String("type", "", "type url, e.g. /cosmos.bank.v1beta1.MsgSend")
	value := fs.String("value", "", "0x prefixed message bytes")
	wasm := fs.Bool("wasm", false, "include cosmwasm messages")
	if err := fs.Parse(args); err != nil {
		return err
	}

	raw, err := hexutil.Decode(*value)
	if err != nil {
		return fmt.Errorf("value: %w", err)
	}
	reg, err := msgs.NewRegistry(*wasm)
	if err != nil {
		return err
	}

	m, err := reg.Decode(tx.NewMsg(*typeURL, raw))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %+v\n", m.TypeURL(), m)
	return nil
}

func listTypes(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("types", flag.ContinueOnError)
	wasm := fs.Bool("wasm", false, "include cosmwasm messages")
	if err := fs.Parse(args); err != nil {
		return err
	}

	reg, err := msgs.NewRegistry(*wasm)
	if err != nil {
		return err
	}
	for _, url := range reg.TypeURLs() {
		fmt.Fprintln(out, url)
	}
	return nil
}

// ---------------- HELPERS ----------------

// resolveSender picks the account address from -from, or derives it from
// -key. When both are given they must agree.
func resolveSender(from, key, prefix string) (string, error) {
	if key == "" {
		return from, checkAddress(from, prefix)
	}
	w, err := types.WalletFromHex(key)
	if err != nil {
		return "", fmt.Errorf("key: %w", err)
	}
	addr := w.Address.String(prefix)
	if from != "" && from != addr {
		return "", fmt.Errorf("%w: -from %s does not match key address %s", types.ErrInvalidAddress, from, addr)
	}
	return addr, nil
}

func checkAddress(addr, prefix string) error {
	if _, err := types.ParseAddressWithPrefix(addr, prefix); err != nil {
		return fmt.Errorf("%q: %w", addr, err)
	}
	return nil
}

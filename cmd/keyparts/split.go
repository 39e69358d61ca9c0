package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/wbrc/keyparts"
	"github.com/wbrc/keyparts/kcv"
)

func (a *app) newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split [KEY...]",
		Short: "Split a key into XOR parts",
		Long: `Split a key into N XOR parts. If more than one key is given they are treated
as existing parts and merged into the key first.

With --keypad (or --mode keypad) the parts are built from digits that are easy to type on a
phone keypad, avoiding repeated 2s and 3s. Such parts are NOT random and must
only be used for test keys.

Example:
  keyparts split -p 3 -k 3des 0123456789ABCDEFFEDCBA9876543210`,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.parseAlgorithm()
			if err != nil {
				return err
			}

			mode, err := a.parseMode()
			if err != nil {
				return err
			}

			inputs, err := a.readParts(args)
			if err != nil {
				return err
			}
			inputs = upper(inputs)

			key, err := keyparts.Merge(inputs)
			if err != nil {
				return err
			}

			n := a.v.GetInt(keyParts)
			if mode == keyparts.Keypad {
				a.log.Warn().Msg("keypad parts are not random, use them for test keys only")
			}

			a.log.Debug().
				Int("inputs", len(inputs)).
				Int("parts", n).
				Stringer("mode", mode).
				Str("kcv", string(alg)).
				Msg("splitting key")

			parts, err := keyparts.Split(key, n, mode)
			if err != nil {
				return err
			}

			return a.printSplit(inputs, key, parts, mode, alg)
		},
	}

	f := cmd.Flags()
	f.IntP(keyParts, "p", 2, "number of output parts")
	f.BoolP(keyKeypad, "t", false, "simplify test keys for entry on a phone keypad, same as --mode keypad")
	f.String(keyMode, keyparts.Random.String(), "split mode (random, keypad)")
	f.StringP(keyKCV, "k", "", "KCV algorithm ("+algorithmList()+")")
	f.Int(keyGroup, 4, "hex digits per output group, 0 for none")

	return cmd
}

func (a *app) printSplit(inputs []string, key string, parts []string, mode keyparts.Mode, alg kcv.Algorithm) error {
	r := &result{Mode: mode.String(), Algorithm: string(alg)}

	var err error
	if r.Inputs, err = views(inputs, alg); err != nil {
		return err
	}

	k, err := view(key, alg)
	if err != nil {
		return err
	}
	r.Key = &k

	if r.Outputs, err = views(parts, alg); err != nil {
		return err
	}

	return a.printResult(r)
}

// parseMode returns the configured split mode. --keypad overrides --mode.
func (a *app) parseMode() (keyparts.Mode, error) {
	if a.v.GetBool(keyKeypad) {
		return keyparts.Keypad, nil
	}

	return keyparts.ParseMode(a.v.GetString(keyMode))
}

func algorithmList() string {
	algs := kcv.Algorithms()
	names := make([]string, len(algs))
	for i, alg := range algs {
		names[i] = string(alg)
	}

	return strings.Join(names, ", ")
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/wbrc/keyparts"
)

func (a *app) newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [KEY...]",
		Short: "Merge XOR key parts into one key",
		Long: `Merge key parts into one key using XOR. All parts must be the same length.

Example:
  keyparts merge -k aes "0123 4567 89AB CDEF" "FEDC BA98 7654 3210"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.parseAlgorithm()
			if err != nil {
				return err
			}

			inputs, err := a.readParts(args)
			if err != nil {
				return err
			}
			inputs = upper(inputs)

			a.log.Debug().
				Int("inputs", len(inputs)).
				Str("kcv", string(alg)).
				Msg("merging key parts")

			key, err := keyparts.Merge(inputs)
			if err != nil {
				return err
			}

			r := &result{Algorithm: string(alg)}
			if r.Inputs, err = views(inputs, alg); err != nil {
				return err
			}

			k, err := view(key, alg)
			if err != nil {
				return err
			}
			r.Key = &k

			return a.printResult(r)
		},
	}

	f := cmd.Flags()
	f.StringP(keyKCV, "k", "", "KCV algorithm ("+algorithmList()+")")
	f.Int(keyGroup, 4, "hex digits per output group, 0 for none")

	return cmd
}

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wbrc/keyparts/kcv"
)

func (a *app) newKCVCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "kcv [KEY...]",
		Short: "Print the check value of keys or key parts",
		Long: `Print the key check value of each key. By default only the first three bytes
are shown, as they are by an HSM.

Algorithms:
` + algorithmHelp() + `
Example:
  keyparts kcv -k 3des 0123456789ABCDEFFEDCBA9876543210`,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := a.parseAlgorithm()
			if err != nil {
				return err
			}
			if alg == "" {
				return &usageError{errors.New("a KCV algorithm is required (--kcv)")}
			}

			keys, err := a.readParts(args)
			if err != nil {
				return err
			}

			vs, err := views(upper(keys), alg)
			if err != nil {
				return err
			}

			if a.json {
				return a.printResult(&result{Algorithm: string(alg), Inputs: vs})
			}

			n := a.v.GetInt(keyGroup)
			for i, v := range vs {
				cv := v.CheckValue
				if !full {
					cv = cv[:kcvDigits]
				}
				fmt.Fprintf(a.stdout, "Key %d: %s (KCV %s)\n", i+1, group(v.Value, n), group(cv, 2))
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.StringP(keyKCV, "k", "", "KCV algorithm ("+algorithmList()+")")
	f.BoolVar(&full, "full", false, "print the full check value")
	f.Int(keyGroup, 4, "hex digits per output group, 0 for none")

	return cmd
}

// one "name  description" line per algorithm
func algorithmHelp() string {
	var b strings.Builder
	for _, alg := range kcv.Algorithms() {
		fmt.Fprintf(&b, "  %-10s %s\n", alg, alg.Description())
	}

	return b.String()
}

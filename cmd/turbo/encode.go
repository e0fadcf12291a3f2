package main

import (
	"fmt"

	"github.com/pthm/turbo"
	"github.com/spf13/cobra"
)

func newEncodeCmd(a *app) *cobra.Command {
	var f streamFlags
	var path string

	cmd := &cobra.Command{
		Use:   "encode ACTION",
		Short: "Pack a stream into a deferred stream token",
		Long: `Encode packs the stream for ACTION into a token that "turbo serve" (or any
handler built with turbo.Deferred and the same key) renders on request.

Tokens are signed by default and encrypted with --sensitive.

Examples:
  turbo encode reload --key "$TURBO_KEY"
  turbo encode update --target cart_count --content 3 --url /_s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := a.encoder()
			if err != nil {
				return err
			}
			c, err := f.build(args[0], cmd.InOrStdin(), a.log)
			if err != nil {
				return err
			}

			var out string
			if path != "" {
				out, err = turbo.DeferURL(enc, path, c, a.cfg.Sensitive)
			} else {
				out, err = enc.Encode(c.Stream(), a.cfg.Sensitive)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	f.register(cmd.Flags())
	cmd.Flags().StringVar(&path, "url", "", "print a URL for this path instead of the bare token")
	return cmd
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode TOKEN",
		Short: "Render the stream packed in a deferred stream token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := a.encoder()
			if err != nil {
				return err
			}
			s, err := enc.Decode(args[0], a.cfg.Sensitive)
			if err != nil {
				return fmt.Errorf("decode token: %w", err)
			}
			a.log.WithField("action", s.Action).Debug("decoded stream token")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s.String())
			return err
		},
	}
}

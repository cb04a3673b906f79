// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/kkrgzz/encrypt-x/internal/tui"
	"github.com/kkrgzz/encrypt-x/models"
	"github.com/spf13/cobra"
)

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "encryptx",
		Short: "Encrypt and decrypt fragments of text documents",
		Long: "encryptx replaces selected text in a document with a password protected\n" +
			"envelope and turns envelopes back into text.\n\n" +
			"Offsets given with --from and --to are byte offsets into the document.",
		Version:       a.buildInfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVarP(&a.flags.configPath, "config", "c", "", "path to the JSON config file")
	root.PersistentFlags().StringVar(&a.flags.daemon, "daemon", "", "encryptd address; empty works in process")
	root.PersistentFlags().StringVar(&a.flags.vault, "vault", "", "folder document paths are relative to")
	root.PersistentFlags().BoolVar(&a.flags.plain, "plain", false, "read passwords from stdin instead of the terminal UI")

	root.AddCommand(
		a.newAnalyzeCommand(),
		a.newEncryptCommand(),
		a.newDecryptCommand(),
		a.newRenderCommand(),
		a.newNoteCommand(),
		a.newCacheCommand(),
		a.newVersionCommand(),
	)

	return root
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var backend *models.VersionResponse
			if v, err := a.backend.Version(cmd.Context()); err == nil {
				backend = &v
			} else {
				a.logger.Warn().Err(err).Str("func", "version").Msg("backend version unavailable")
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderVersion(a.buildInfo, backend))
			return nil
		},
	}
}

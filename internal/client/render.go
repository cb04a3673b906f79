// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/kkrgzz/encrypt-x/internal/marker"
	"github.com/kkrgzz/encrypt-x/internal/store"
	"github.com/spf13/cobra"
)

func (a *App) newRenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render <document>",
		Short: "Print a document as the reading view shows it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

func (a *App) render(ctx context.Context, w io.Writer, name string) error {
	path, err := store.VaultPath(name)
	if err != nil {
		return err
	}

	doc, err := a.docs.Read(ctx, path)
	if err != nil {
		return err
	}

	segments, err := a.backend.ReadingSegments(ctx, doc)
	if err != nil {
		return err
	}

	markerColor := color.New(color.FgYellow, color.Bold)
	for _, seg := range segments {
		if !seg.Marker {
			io.WriteString(w, seg.Text)
			continue
		}

		label := marker.Glyph
		if d, ok := marker.Decode(seg.Text); ok && d.Hint != "" {
			label += " " + d.Hint
		}
		markerColor.Fprint(w, "["+label+"]")
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"

	"github.com/kkrgzz/encrypt-x/models"
	"github.com/spf13/cobra"
)

func (a *App) newCacheCommand() *cobra.Command {
	cache := &cobra.Command{
		Use:   "cache",
		Short: "Manage remembered passwords",
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget every remembered password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.backend.ClearCache(cmd.Context())
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Cleared %d remembered password(s)", n)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the cache settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.backend.CacheSettings(cmd.Context())
			if err != nil {
				return err
			}
			printCacheSettings(cmd.OutOrStdout(), settings)
			return nil
		},
	}

	var (
		active  bool
		timeout int
		level   string
	)
	set := &cobra.Command{
		Use:   "set",
		Short: "Change the cache settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := a.backend.CacheSettings(cmd.Context())
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("active") {
				settings.Active = active
			}
			if flags.Changed("timeout") {
				settings.TimeoutMinutes = timeout
			}
			if flags.Changed("level") {
				settings.Level = models.CacheLevel(level)
				if !settings.Level.Valid() {
					return ErrInvalidCacheLevel
				}
			}

			if settings, err = a.backend.ApplyCacheSettings(cmd.Context(), settings); err != nil {
				return err
			}
			printCacheSettings(cmd.OutOrStdout(), settings)
			return nil
		},
	}
	set.Flags().BoolVar(&active, "active", true, "remember passwords")
	set.Flags().IntVar(&timeout, "timeout", 0, "minutes before remembered passwords expire; 0 never")
	set.Flags().StringVar(&level, "level", "", "scope: vault, parentPath or filename")

	cache.AddCommand(clearCmd, show, set)
	return cache
}

func printCacheSettings(w io.Writer, s models.CacheSettings) {
	notice(w, "active: %t", s.Active)
	notice(w, "timeout: %s", timeoutLabel(s.TimeoutMinutes))
	notice(w, "level: %s", s.Level)
}

func timeoutLabel(minutes int) string {
	if minutes <= 0 {
		return "never"
	}
	return fmt.Sprintf("%d min", minutes)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kkrgzz/encrypt-x/internal/service"
	"github.com/kkrgzz/encrypt-x/internal/store"
	"github.com/kkrgzz/encrypt-x/internal/tui"
	"github.com/kkrgzz/encrypt-x/models"
	"github.com/spf13/cobra"
)

type selectionFlags struct {
	from int
	to   int
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.from, "from", 0, "selection start (byte offset)")
	cmd.Flags().IntVar(&f.to, "to", 0, "selection end (byte offset); equal to --from means a cursor")
}

func (a *App) newAnalyzeCommand() *cobra.Command {
	var sel selectionFlags

	cmd := &cobra.Command{
		Use:   "analyze <document>",
		Short: "Tell whether a selection can be encrypted or decrypted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.analyze(cmd.Context(), cmd.OutOrStdout(), args[0], sel.from, sel.to)
		},
	}
	sel.register(cmd)

	return cmd
}

func (a *App) newEncryptCommand() *cobra.Command {
	var (
		sel  selectionFlags
		text string
	)

	cmd := &cobra.Command{
		Use:   "encrypt <document>",
		Short: "Encrypt the selection in place",
		Long: "Encrypt the selection in place. With an empty selection outside any\n" +
			"envelope, the text given by --text is encrypted and inserted at --from.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.encryptInDocument(cmd.Context(), cmd.OutOrStdout(), args[0], sel.from, sel.to, text)
		},
	}
	sel.register(cmd)
	cmd.Flags().StringVar(&text, "text", "", "text to insert encrypted when nothing is selected")

	return cmd
}

func (a *App) newDecryptCommand() *cobra.Command {
	var (
		sel     selectionFlags
		inPlace bool
	)

	cmd := &cobra.Command{
		Use:   "decrypt <document>",
		Short: "Decrypt the envelope at the selection or around the cursor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.decryptInDocument(cmd.Context(), cmd.OutOrStdout(), args[0], sel.from, sel.to, inPlace)
		},
	}
	sel.register(cmd)
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "replace the envelope with its plaintext without showing it")

	return cmd
}

func (a *App) loadSelection(ctx context.Context, name string, from, to int) (string, string, models.Selection, error) {
	path, err := store.VaultPath(name)
	if err != nil {
		return "", "", models.Selection{}, err
	}

	doc, err := a.docs.Read(ctx, path)
	if err != nil {
		return "", "", models.Selection{}, err
	}

	sel, err := service.Select(doc, from, to, a.cfg.Editor.ExpandToWholeLines)
	return path, doc, sel, err
}

func (a *App) analyze(ctx context.Context, w io.Writer, name string, from, to int) error {
	_, _, sel, err := a.loadSelection(ctx, name, from, to)
	if err != nil && !errors.Is(err, service.ErrNothingToEncrypt) && !errors.Is(err, service.ErrUnableToProcess) {
		return err
	}

	fmt.Fprintf(w, "mode:        %s\n", sel.Mode)
	fmt.Fprintf(w, "range:       %d-%d\n", sel.Range.Start, sel.Range.End)
	fmt.Fprintf(w, "empty:       %t\n", sel.Analysis.IsEmpty)
	fmt.Fprintf(w, "can encrypt: %t\n", sel.Analysis.CanEncrypt)
	fmt.Fprintf(w, "can decrypt: %t\n", sel.Analysis.CanDecrypt)
	if d := sel.Analysis.Decryptable; d != nil {
		fmt.Fprintf(w, "version:     %d\n", d.Version)
		fmt.Fprintf(w, "visible:     %t\n", d.ShowInReadingView)
		if d.Hint != "" {
			fmt.Fprintf(w, "hint:        %s\n", d.Hint)
		}
	}

	return nil
}

// promptDefaults prefills the prompt with the password remembered for path
// when the user wants passwords remembered.
func (a *App) promptDefaults(ctx context.Context, path string, sel models.Selection) (models.PromptDefaults, error) {
	var cached models.PasswordAndHint
	if a.cfg.Editor.RememberPassword {
		var err error
		if cached, err = a.backend.LookupPassword(ctx, path); err != nil {
			return models.PromptDefaults{}, err
		}
	}
	return service.PromptDefaults(a.cfg.Editor, sel, cached), nil
}

func (a *App) encryptInDocument(ctx context.Context, w io.Writer, name string, from, to int, text string) error {
	path, doc, sel, err := a.loadSelection(ctx, name, from, to)
	if err != nil {
		return err
	}

	plaintext := sel.Text
	switch {
	case sel.Mode == models.SelectionInsert:
		if strings.TrimSpace(text) == "" {
			return service.ErrNothingToEncrypt
		}
		if !service.Analyze(text).CanEncrypt {
			return service.ErrUnableToProcess
		}
		plaintext = text
	case !sel.Analysis.CanEncrypt:
		return ErrAlreadyEncrypted
	}

	defaults, err := a.promptDefaults(ctx, path, sel)
	if err != nil {
		return err
	}

	answer, err := a.prompter.Prompt(defaults)
	if err != nil {
		return err
	}

	var resp models.EncryptResponse
	err = a.withSpinner("Encrypting...", func() error {
		resp, err = a.backend.Encrypt(ctx, models.EncryptRequest{
			Path:      path,
			Plaintext: plaintext,
			Hint:      answer.Hint,
			Password:  answer.Password,
			Visible:   answer.Visible,
		})
		return err
	})
	if err != nil {
		return err
	}

	if err = a.docs.Write(ctx, path, service.Replace(doc, sel.Range, resp.Envelope)); err != nil {
		return err
	}

	success(w, "Encrypted %d characters in %s", len([]rune(plaintext)), path)
	return nil
}

// decryptWithCachedPassword tries the password remembered for path. ok is
// false when there is none or it does not open the envelope.
func (a *App) decryptWithCachedPassword(ctx context.Context, path, envelope string) (resp models.DecryptResponse, password string, ok bool, err error) {
	if !a.cfg.Editor.RememberPassword {
		return models.DecryptResponse{}, "", false, nil
	}

	cached, err := a.backend.LookupPassword(ctx, path)
	if err != nil || cached.Password == "" {
		return models.DecryptResponse{}, "", false, err
	}

	resp, err = a.backend.Decrypt(ctx, models.DecryptRequest{Path: path, Envelope: envelope, Password: cached.Password})
	if errors.Is(err, service.ErrDecryptionFailed) {
		return models.DecryptResponse{}, "", false, nil
	}
	if err != nil {
		return models.DecryptResponse{}, "", false, err
	}

	resp.UsedCache = true
	return resp, cached.Password, true, nil
}

func (a *App) decryptInDocument(ctx context.Context, w io.Writer, name string, from, to int, inPlace bool) error {
	path, doc, sel, err := a.loadSelection(ctx, name, from, to)
	if err == nil && !sel.Analysis.CanDecrypt {
		err = service.ErrNotDecryptable
	}
	if err != nil {
		if errors.Is(err, service.ErrNothingToEncrypt) || errors.Is(err, service.ErrUnableToProcess) {
			return service.ErrNotDecryptable
		}
		return err
	}
	d := *sel.Analysis.Decryptable

	resp, password, ok, err := a.decryptWithCachedPassword(ctx, path, sel.Text)
	if err != nil {
		return err
	}

	if !ok {
		defaults, err := a.promptDefaults(ctx, path, sel)
		if err != nil {
			return err
		}
		// a remembered password that did not work is not offered again
		defaults.Password = ""

		answer, err := a.prompter.Prompt(defaults)
		if err != nil {
			return err
		}

		err = a.withSpinner("Decrypting...", func() error {
			resp, err = a.backend.Decrypt(ctx, models.DecryptRequest{Path: path, Envelope: sel.Text, Password: answer.Password})
			return err
		})
		if err != nil {
			return err
		}
		password = answer.Password
	}

	if inPlace {
		return a.replaceSelection(ctx, w, path, doc, sel, resp.Plaintext, "Decrypted")
	}

	outcome, err := a.prompter.ShowResult(resp.Plaintext, resp.Hint)
	if err != nil {
		return err
	}

	switch outcome.Action {
	case tui.ActionDecryptInPlace:
		return a.replaceSelection(ctx, w, path, doc, sel, resp.Plaintext, "Decrypted")
	case tui.ActionSave:
		return a.resave(ctx, w, path, doc, sel, d, outcome.Text, password)
	}

	return nil
}

// resave encrypts edited text with the password, hint and visibility of the
// envelope it came from.
func (a *App) resave(ctx context.Context, w io.Writer, path, doc string, sel models.Selection, d models.Decryptable, edited, password string) error {
	if strings.TrimSpace(edited) == "" {
		return service.ErrNothingToEncrypt
	}

	var resp models.EncryptResponse
	err := a.withSpinner("Encrypting...", func() error {
		var err error
		resp, err = a.backend.Encrypt(ctx, models.EncryptRequest{
			Path:      path,
			Plaintext: edited,
			Hint:      d.Hint,
			Password:  password,
			Visible:   d.ShowInReadingView,
		})
		return err
	})
	if err != nil {
		return err
	}

	return a.replaceSelection(ctx, w, path, doc, sel, resp.Envelope, "Saved")
}

func (a *App) replaceSelection(ctx context.Context, w io.Writer, path, doc string, sel models.Selection, with, verb string) error {
	if err := a.docs.Write(ctx, path, service.Replace(doc, sel.Range, with)); err != nil {
		return err
	}

	success(w, "%s %s at %d", verb, path, sel.Range.Start)
	return nil
}

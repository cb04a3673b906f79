// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/kkrgzz/encrypt-x/internal/service"
	"github.com/kkrgzz/encrypt-x/internal/store"
	"github.com/kkrgzz/encrypt-x/models"
	"github.com/spf13/cobra"
)

// NoteExtension is the extension of whole-document encrypted notes.
const NoteExtension = ".mdenc"

func (a *App) newNoteCommand() *cobra.Command {
	note := &cobra.Command{
		Use:   "note",
		Short: "Encrypt or decrypt whole documents",
	}

	var encryptOut string
	encrypt := &cobra.Command{
		Use:   "encrypt <document>",
		Short: "Encrypt a document into a " + NoteExtension + " note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.encryptNote(cmd.Context(), cmd.OutOrStdout(), args[0], encryptOut)
		},
	}
	encrypt.Flags().StringVarP(&encryptOut, "out", "o", "", "note to write (default: document name with "+NoteExtension+")")

	var decryptOut string
	decrypt := &cobra.Command{
		Use:   "decrypt <note>",
		Short: "Decrypt a note, printing it or writing it to --out",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.decryptNote(cmd.Context(), cmd.OutOrStdout(), args[0], decryptOut)
		},
	}
	decrypt.Flags().StringVarP(&decryptOut, "out", "o", "", "document to write the plaintext to")

	note.AddCommand(encrypt, decrypt)
	return note
}

func notePath(doc string) string {
	return strings.TrimSuffix(doc, path.Ext(doc)) + NoteExtension
}

func (a *App) encryptNote(ctx context.Context, w io.Writer, name, out string) error {
	docPath, err := store.VaultPath(name)
	if err != nil {
		return err
	}
	if out == "" {
		out = notePath(docPath)
	}
	if out, err = store.VaultPath(out); err != nil {
		return err
	}

	text, err := a.docs.Read(ctx, docPath)
	if err != nil {
		return err
	}

	defaults, err := a.promptDefaults(ctx, out, models.Selection{Mode: models.SelectionInsert})
	if err != nil {
		return err
	}

	answer, err := a.prompter.Prompt(defaults)
	if err != nil {
		return err
	}

	var data models.FileData
	err = a.withSpinner("Encrypting...", func() error {
		data, err = a.backend.EncryptFile(ctx, models.FileEncryptRequest{
			Path:      out,
			Plaintext: text,
			Hint:      answer.Hint,
			Password:  answer.Password,
		})
		return err
	})
	if err != nil {
		return err
	}

	if err = a.docs.WriteFileData(ctx, out, data); err != nil {
		return err
	}

	success(w, "Encrypted %s into %s", docPath, out)
	return nil
}

func (a *App) decryptNote(ctx context.Context, w io.Writer, name, out string) error {
	src, err := store.VaultPath(name)
	if err != nil {
		return err
	}

	data, err := a.docs.ReadFileData(ctx, src)
	if err != nil {
		return err
	}

	resp, ok, err := a.decryptNoteWithCachedPassword(ctx, src, data)
	if err != nil {
		return err
	}

	if !ok {
		answer, err := a.prompter.Prompt(models.PromptDefaults{Hint: data.Hint})
		if err != nil {
			return err
		}

		err = a.withSpinner("Decrypting...", func() error {
			resp, err = a.backend.DecryptFile(ctx, models.FileDecryptRequest{Path: src, Data: data, Password: answer.Password})
			return err
		})
		if err != nil {
			return err
		}
	}

	if out == "" {
		_, err = fmt.Fprint(w, resp.Plaintext)
		return err
	}

	if out, err = store.VaultPath(out); err != nil {
		return err
	}
	if err = a.docs.Write(ctx, out, resp.Plaintext); err != nil {
		return err
	}

	success(w, "Decrypted %s into %s", src, out)
	return nil
}

func (a *App) decryptNoteWithCachedPassword(ctx context.Context, src string, data models.FileData) (models.DecryptResponse, bool, error) {
	if !a.cfg.Editor.RememberPassword {
		return models.DecryptResponse{}, false, nil
	}

	resp, err := a.backend.DecryptFile(ctx, models.FileDecryptRequest{Path: src, Data: data})
	switch {
	case errors.Is(err, service.ErrPasswordRequired), errors.Is(err, service.ErrDecryptionFailed):
		return models.DecryptResponse{}, false, nil
	case err != nil:
		return models.DecryptResponse{}, false, err
	}
	return resp, true, nil
}
